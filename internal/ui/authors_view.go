package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/bookget/bookdesk/internal/logger"
	"github.com/bookget/bookdesk/internal/model"
	"github.com/bookget/bookdesk/internal/search"
)

// authorsView mirrors booksView for the author catalog.
type authorsView struct {
	root *RootUI

	debouncer   *search.Debouncer
	searchEntry *widget.Entry
	addBtn      *widget.Button
	status      *widget.Label
	grid        *fyne.Container
	box         *fyne.Container

	token  string
	cached []model.Author
}

func newAuthorsView(root *RootUI) *authorsView {
	v := &authorsView{
		root:      root,
		debouncer: search.New(SearchDebounceDelay),
	}

	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(root.localization.GetText(KeySearchAuthors))
	v.searchEntry.OnChanged = func(text string) {
		v.debouncer.Input(text, v.onDispatch)
	}

	v.addBtn = widget.NewButton(root.localization.GetText(KeyAddAuthor), func() {
		root.showAuthorForm(nil)
	})
	v.addBtn.Importance = widget.HighImportance
	v.addBtn.Hide()

	v.status = widget.NewLabel("")
	v.status.Hide()

	v.grid = container.NewGridWrap(fyne.NewSize(CardMinWidth, CardMinHeight))

	top := container.NewBorder(nil, nil, nil, v.addBtn, v.searchEntry)
	v.box = container.NewBorder(container.NewVBox(top, v.status), nil, nil, nil,
		container.NewVScroll(v.grid))

	return v
}

// Container returns the view's root canvas object.
func (v *authorsView) Container() fyne.CanvasObject {
	return v.box
}

// load mirrors booksView.load: abandon any in-flight search, clear the box,
// fetch, and render if the view is still current. onLoaded (may be nil) runs
// after a successful render.
func (v *authorsView) load(token string, onLoaded func(authors []model.Author)) {
	v.token = token
	v.searchEntry.SetText("")
	v.debouncer.Stop()
	v.setStatus(v.root.localization.GetText(KeyLoading))

	go func() {
		authors, err := v.root.gateway.ListAuthors(context.Background())
		fyne.Do(func() {
			if !v.root.isCurrent(token) {
				return
			}
			if err != nil {
				v.setStatus("")
				v.root.fail(err)
				return
			}
			v.cached = authors
			v.render(authors)
			if onLoaded != nil {
				onLoaded(authors)
			}
		})
	}()
}

// onDispatch handles a debounced search dispatch on the timer goroutine.
func (v *authorsView) onDispatch(d search.Dispatch) {
	if d.Query == "" {
		fyne.Do(func() {
			if !v.debouncer.IsCurrent(d.Seq) || !v.root.isCurrent(v.token) {
				return
			}
			v.render(v.cached)
		})
		return
	}

	logger.Get().Debug().Uint64("seq", d.Seq).Str("query", d.Query).Msg("author search dispatched")

	authors, err := v.root.gateway.SearchAuthors(context.Background(), d.Query)
	fyne.Do(func() {
		if !v.debouncer.IsCurrent(d.Seq) || !v.root.isCurrent(v.token) {
			return
		}
		if err != nil {
			v.root.fail(err)
			return
		}
		v.render(authors)
	})
}

func (v *authorsView) render(authors []model.Author) {
	role := v.root.session.Role()

	if role == model.RoleAdmin {
		v.addBtn.Show()
	} else {
		v.addBtn.Hide()
	}

	v.grid.Objects = nil
	for _, author := range authors {
		v.grid.Objects = append(v.grid.Objects, v.authorCard(author, role))
	}
	v.grid.Refresh()

	if len(authors) == 0 {
		v.setStatus(v.root.localization.GetText(KeyNoAuthorsFound))
	} else {
		v.setStatus("")
	}
}

func (v *authorsView) authorCard(author model.Author, role model.Role) fyne.CanvasObject {
	loc := v.root.localization

	biography := author.Biography
	if biography == "" {
		biography = loc.GetText(KeyNoBiography)
	}
	bioLabel := widget.NewLabel(model.TruncateDescription(biography, model.CardDescriptionLimit))
	bioLabel.Wrapping = fyne.TextWrapWord

	subtitle := fmt.Sprintf("%s: %d", loc.GetText(KeyBooks), len(author.Books))

	body := container.NewVBox(bioLabel)
	if actions := v.authorActions(author, role); actions != nil {
		body.Objects = append(body.Objects, actions)
	}

	card := widget.NewCard(author.Name, subtitle, body)
	return newTappableCard(card, func() {
		v.root.showAuthorDetail(author)
	})
}

func (v *authorsView) authorActions(author model.Author, role model.Role) fyne.CanvasObject {
	loc := v.root.localization

	var buttons []fyne.CanvasObject
	for _, action := range model.CardActions(role, model.KindAuthor) {
		switch action {
		case model.ActionEdit:
			buttons = append(buttons, widget.NewButton(loc.GetText(KeyEdit), func() {
				a := author
				v.root.showAuthorForm(&a)
			}))
		case model.ActionDelete:
			deleteBtn := widget.NewButton(loc.GetText(KeyDelete), func() {
				v.root.confirmDeleteAuthor(author)
			})
			deleteBtn.Importance = widget.DangerImportance
			buttons = append(buttons, deleteBtn)
		}
	}
	if len(buttons) == 0 {
		return nil
	}
	return container.NewHBox(buttons...)
}

func (v *authorsView) setStatus(message string) {
	if message == "" {
		v.status.Hide()
		return
	}
	v.status.SetText(message)
	v.status.Show()
}
