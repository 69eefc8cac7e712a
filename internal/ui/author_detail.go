package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/bookget/bookdesk/internal/api"
	"github.com/bookget/bookdesk/internal/model"
)

// showAuthorDetail opens the full author dialog. Book titles link back to
// book details the same way book details link to authors.
func (ui *RootUI) showAuthorDetail(author model.Author) {
	loc := ui.localization
	role := ui.session.Role()

	var d dialog.Dialog

	bookLinks := container.NewVBox(widget.NewLabel(loc.GetText(KeyBooks) + ":"))
	if len(author.Books) == 0 {
		bookLinks.Objects = append(bookLinks.Objects, widget.NewLabel(DashPlaceholder))
	}
	for _, book := range author.Books {
		id := book.ID
		link := widget.NewButton(book.Title, func() {
			d.Hide()
			ui.openBookByID(id)
		})
		link.Importance = widget.LowImportance
		bookLinks.Objects = append(bookLinks.Objects, link)
	}

	bioText := author.Biography
	if bioText == "" {
		bioText = loc.GetText(KeyNoBiography)
	}
	biography := widget.NewLabel(bioText)
	biography.Wrapping = fyne.TextWrapWord

	top := container.NewVBox(bookLinks)
	if actions := ui.authorDetailActions(author, role, func() { d.Hide() }); actions != nil {
		top.Objects = append(top.Objects, actions)
	}

	content := container.NewBorder(top, nil, nil, nil, container.NewVScroll(biography))

	d = dialog.NewCustom(author.Name, loc.GetText(KeyClose), content, ui.window)
	d.Resize(fyne.NewSize(DetailDialogWidth, DetailDialogHeight))
	d.Show()
}

// authorDetailActions offers Edit to any authenticated user; author deletion
// stays admin-only on the list cards.
func (ui *RootUI) authorDetailActions(author model.Author, role model.Role, hide func()) fyne.CanvasObject {
	loc := ui.localization

	var buttons []fyne.CanvasObject
	for _, action := range model.DetailActions(role, model.KindAuthor) {
		if action == model.ActionEdit {
			buttons = append(buttons, widget.NewButton(loc.GetText(KeyEdit), func() {
				hide()
				a := author
				ui.showAuthorForm(&a)
			}))
		}
	}
	if len(buttons) == 0 {
		return nil
	}
	return container.NewHBox(buttons...)
}

// confirmDeleteAuthor deletes an author after confirmation. Books orphaned by
// the deletion are removed by the backend and each one is reported to the
// user individually.
func (ui *RootUI) confirmDeleteAuthor(author model.Author) {
	loc := ui.localization
	ui.showConfirm(loc.GetText(KeyConfirmDelete),
		fmt.Sprintf(loc.GetText(KeyConfirmDeleteAuth), author.Name), func() {
			go func() {
				result, err := ui.gateway.DeleteAuthor(context.Background(), author.ID)
				if err != nil {
					ui.fail(err)
					return
				}
				fyne.Do(func() {
					ui.showToast(loc.GetText(KeyAuthorDeleted))
					ui.surfaceCascade(result)
					ui.ShowAuthors()
				})
			}()
		})
}

// surfaceCascade opens one info dialog per book removed alongside its last
// author, so no deletion slips past unnoticed.
func (ui *RootUI) surfaceCascade(result api.AuthorDeleteResult) {
	loc := ui.localization
	for _, title := range result.DeletedBooks {
		ui.showInfo(loc.GetText(KeyBookDeleted), fmt.Sprintf(loc.GetText(KeyCascadeDeleted), title))
	}
}
