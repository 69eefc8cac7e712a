package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/bookget/bookdesk/internal/model"
)

// showAuthorForm opens the author create/edit dialog. existing is nil when
// creating.
func (ui *RootUI) showAuthorForm(existing *model.Author) {
	loc := ui.localization

	name := widget.NewEntry()
	biography := widget.NewMultiLineEntry()
	biography.Wrapping = fyne.TextWrapWord

	if existing != nil {
		name.SetText(existing.Name)
		biography.SetText(existing.Biography)
	}

	errorLabel := widget.NewLabel("")
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hide()

	formTitle := loc.GetText(KeyAddAuthor)
	if existing != nil {
		formTitle = loc.GetText(KeyEdit) + ": " + existing.Name
	}

	var d dialog.Dialog
	saveBtn := widget.NewButton(loc.GetText(KeySave), func() {
		trimmed := strings.TrimSpace(name.Text)
		if trimmed == "" {
			errorLabel.SetText(loc.GetText(KeyNameRequired))
			errorLabel.Show()
			return
		}
		input := model.AuthorInput{
			Name:      trimmed,
			Biography: strings.TrimSpace(biography.Text),
		}
		d.Hide()
		ui.saveAuthor(existing, input)
	})
	saveBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(loc.GetText(KeyCancel), func() { d.Hide() })

	form := container.NewVBox(
		widget.NewForm(widget.NewFormItem(loc.GetText(KeyName), name)),
		widget.NewLabel(loc.GetText(KeyBiography)),
		biography,
		errorLabel,
		container.NewHBox(cancelBtn, saveBtn),
	)

	d = dialog.NewCustomWithoutButtons(formTitle, form, ui.window)
	d.Resize(fyne.NewSize(FormDialogWidth, FormDialogHeight))
	d.Show()
}

func (ui *RootUI) saveAuthor(existing *model.Author, input model.AuthorInput) {
	go func() {
		var err error
		if existing != nil {
			_, err = ui.gateway.UpdateAuthor(context.Background(), existing.ID, input)
		} else {
			_, err = ui.gateway.CreateAuthor(context.Background(), input)
		}
		if err != nil {
			ui.fail(err)
			return
		}
		fyne.Do(func() {
			ui.showToast(ui.localization.GetText(KeyAuthorSaved))
			ui.ShowAuthors()
		})
	}()
}
