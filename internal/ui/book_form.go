package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/bookget/bookdesk/internal/model"
)

// showBookForm opens the create/edit dialog. existing is nil when creating.
// The author picker is fed from the cached author index; each option carries
// the author id so duplicate names stay distinguishable.
func (ui *RootUI) showBookForm(existing *model.Book) {
	loc := ui.localization

	title := widget.NewEntry()
	isbn := widget.NewEntry()
	year := widget.NewEntry()
	description := widget.NewMultiLineEntry()
	description.Wrapping = fyne.TextWrapWord

	authors := ui.cachedAuthors()
	options := make([]string, 0, len(authors))
	idByOption := make(map[string]int, len(authors))
	for _, author := range authors {
		option := fmt.Sprintf("%s (#%d)", author.Name, author.ID)
		options = append(options, option)
		idByOption[option] = author.ID
	}
	authorPicker := widget.NewCheckGroup(options, nil)

	if existing != nil {
		title.SetText(existing.Title)
		isbn.SetText(existing.ISBN)
		year.SetText(strconv.Itoa(existing.PublicationYear))
		description.SetText(existing.Description)

		var selected []string
		for _, bookAuthor := range existing.Authors {
			selected = append(selected, fmt.Sprintf("%s (#%d)", bookAuthor.Name, bookAuthor.ID))
		}
		authorPicker.SetSelected(selected)
	}

	errorLabel := widget.NewLabel("")
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hide()

	showError := func(message string) {
		errorLabel.SetText(message)
		errorLabel.Show()
	}

	formTitle := loc.GetText(KeyAddBook)
	if existing != nil {
		formTitle = loc.GetText(KeyEdit) + ": " + existing.Title
	}

	var d dialog.Dialog
	saveBtn := widget.NewButton(loc.GetText(KeySave), func() {
		input, err := ui.bookInputFromForm(title.Text, isbn.Text, year.Text, description.Text,
			authorPicker.Selected, idByOption)
		if err != nil {
			showError(err.Error())
			return
		}
		d.Hide()
		ui.saveBook(existing, input)
	})
	saveBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(loc.GetText(KeyCancel), func() { d.Hide() })

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(loc.GetText(KeyTitle), title),
			widget.NewFormItem(loc.GetText(KeyISBN), isbn),
			widget.NewFormItem(loc.GetText(KeyYear), year),
		),
		widget.NewLabel(loc.GetText(KeyDescription)),
		description,
		widget.NewLabel(loc.GetText(KeyAuthors)),
		container.NewVScroll(authorPicker),
		errorLabel,
		container.NewHBox(cancelBtn, saveBtn),
	)

	d = dialog.NewCustomWithoutButtons(formTitle, form, ui.window)
	d.Resize(fyne.NewSize(FormDialogWidth, FormDialogHeight))
	d.Show()
}

// bookInputFromForm validates the raw form values and assembles the payload.
func (ui *RootUI) bookInputFromForm(title, isbn, year, description string,
	selected []string, idByOption map[string]int) (model.BookInput, error) {

	loc := ui.localization

	title = strings.TrimSpace(title)
	if title == "" {
		return model.BookInput{}, fmt.Errorf("%s", loc.GetText(KeyTitleRequired))
	}

	yearValue, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return model.BookInput{}, fmt.Errorf("%s", loc.GetText(KeyInvalidYear))
	}

	var authorIDs []int
	for _, option := range selected {
		if id, ok := idByOption[option]; ok {
			authorIDs = append(authorIDs, id)
		}
	}
	if len(authorIDs) == 0 {
		return model.BookInput{}, fmt.Errorf("%s", loc.GetText(KeyAuthorRequired))
	}

	return model.BookInput{
		Title:           title,
		ISBN:            strings.TrimSpace(isbn),
		PublicationYear: yearValue,
		Description:     strings.TrimSpace(description),
		AuthorIDs:       authorIDs,
	}, nil
}

func (ui *RootUI) saveBook(existing *model.Book, input model.BookInput) {
	go func() {
		var err error
		if existing != nil {
			_, err = ui.gateway.UpdateBook(context.Background(), existing.ID, input)
		} else {
			_, err = ui.gateway.CreateBook(context.Background(), input)
		}
		if err != nil {
			ui.fail(err)
			return
		}
		fyne.Do(func() {
			ui.showToast(ui.localization.GetText(KeyBookSaved))
			ui.ShowBooks()
		})
	}()
}
