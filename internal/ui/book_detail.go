package ui

import (
	"context"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/bookget/bookdesk/internal/model"
)

// showBookDetail opens the full book dialog. Author names are links: tapping
// one closes this dialog and opens the author's detail, so the user can hop
// between related records.
func (ui *RootUI) showBookDetail(book model.Book) {
	loc := ui.localization
	role := ui.session.Role()

	var d dialog.Dialog

	meta := container.NewHBox(
		widget.NewLabel(loc.GetText(KeyISBN)+": "+book.ISBN),
		widget.NewLabel(MiddleDotSeparator),
		widget.NewLabel(loc.GetText(KeyYear)+": "+strconv.Itoa(book.PublicationYear)),
	)

	authorLinks := container.NewHBox(widget.NewLabel(loc.GetText(KeyAuthors) + ":"))
	for _, author := range book.Authors {
		id := author.ID
		link := widget.NewButton(author.Name, func() {
			d.Hide()
			ui.openAuthorByID(id)
		})
		link.Importance = widget.LowImportance
		authorLinks.Objects = append(authorLinks.Objects, link)
	}

	ratingBox := container.NewVBox(widget.NewLabel(ui.ratingLine(book)))
	if mine, ok := ui.myRating(book); ok {
		ratingBox.Objects = append(ratingBox.Objects,
			widget.NewLabel(fmt.Sprintf(loc.GetText(KeyYourRating), model.StarString(mine))))
	}

	descText := book.Description
	if descText == "" {
		descText = loc.GetText(KeyNoDescription)
	}
	description := widget.NewLabel(descText)
	description.Wrapping = fyne.TextWrapWord

	body := container.NewVBox(meta, authorLinks, ratingBox)

	if actions := ui.bookDetailActions(book, role, func() { d.Hide() }); actions != nil {
		body.Objects = append(body.Objects, actions)
	}

	content := container.NewBorder(body, nil, nil, nil, container.NewVScroll(description))

	d = dialog.NewCustom(book.Title, loc.GetText(KeyClose), content, ui.window)
	d.Resize(fyne.NewSize(DetailDialogWidth, DetailDialogHeight))
	d.Show()
}

// bookDetailActions builds the dialog's action row. Delete is intentionally
// absent here; destructive actions live on the list cards only.
func (ui *RootUI) bookDetailActions(book model.Book, role model.Role, hide func()) fyne.CanvasObject {
	loc := ui.localization

	var buttons []fyne.CanvasObject
	for _, action := range model.DetailActions(role, model.KindBook) {
		switch action {
		case model.ActionRate:
			buttons = append(buttons, widget.NewButton(loc.GetText(KeyRate), func() {
				hide()
				ui.showRatingDialog(book)
			}))
		case model.ActionDownload:
			buttons = append(buttons, widget.NewButton(loc.GetText(KeyDownload), func() {
				ui.showInfo(loc.GetText(KeyDownload), loc.GetText(KeyDownloadPending))
			}))
		case model.ActionEdit:
			buttons = append(buttons, widget.NewButton(loc.GetText(KeyEdit), func() {
				hide()
				b := book
				ui.showBookForm(&b)
			}))
		}
	}
	if len(buttons) == 0 {
		return nil
	}
	return container.NewHBox(buttons...)
}

// confirmDeleteBook asks for confirmation, then deletes and reloads.
func (ui *RootUI) confirmDeleteBook(book model.Book) {
	loc := ui.localization
	ui.showConfirm(loc.GetText(KeyConfirmDelete),
		fmt.Sprintf(loc.GetText(KeyConfirmDeleteBook), book.Title), func() {
			go func() {
				if err := ui.gateway.DeleteBook(context.Background(), book.ID); err != nil {
					ui.fail(err)
					return
				}
				fyne.Do(func() {
					ui.showToast(loc.GetText(KeyBookDeleted))
					ui.ShowBooks()
				})
			}()
		})
}
