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

// booksView renders the book catalog as a grid of cards with debounced
// search. The grid is rebuilt from scratch on every render so the visible
// actions always match the current role.
type booksView struct {
	root *RootUI

	debouncer   *search.Debouncer
	searchEntry *widget.Entry
	addBtn      *widget.Button
	status      *widget.Label
	grid        *fyne.Container
	box         *fyne.Container

	token  string
	cached []model.Book
}

func newBooksView(root *RootUI) *booksView {
	v := &booksView{
		root:      root,
		debouncer: search.New(SearchDebounceDelay),
	}

	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(root.localization.GetText(KeySearchBooks))
	v.searchEntry.OnChanged = func(text string) {
		v.debouncer.Input(text, v.onDispatch)
	}

	v.addBtn = widget.NewButton(root.localization.GetText(KeyAddBook), func() {
		root.showBookForm(nil)
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
func (v *booksView) Container() fyne.CanvasObject {
	return v.box
}

// load fetches the full catalog and renders it, unless the user navigated
// away before the response arrived. Any in-flight search is abandoned and
// the search box cleared, so the rendered list and the box always agree.
// onLoaded (may be nil) runs after a successful render.
func (v *booksView) load(token string, onLoaded func(books []model.Book)) {
	v.token = token
	v.searchEntry.SetText("")
	v.debouncer.Stop()
	v.setStatus(v.root.localization.GetText(KeyLoading))
	v.root.loadAuthorsIndex()

	go func() {
		books, err := v.root.gateway.ListBooks(context.Background())
		fyne.Do(func() {
			if !v.root.isCurrent(token) {
				return
			}
			if err != nil {
				v.setStatus("")
				v.root.fail(err)
				return
			}
			v.cached = books
			v.render(books)
			if onLoaded != nil {
				onLoaded(books)
			}
		})
	}()
}

// onDispatch handles a debounced search dispatch. Runs on the debounce timer
// goroutine. An empty query restores the cached unfiltered list without a
// network round trip.
func (v *booksView) onDispatch(d search.Dispatch) {
	if d.Query == "" {
		fyne.Do(func() {
			if !v.debouncer.IsCurrent(d.Seq) || !v.root.isCurrent(v.token) {
				return
			}
			v.render(v.cached)
		})
		return
	}

	logger.Get().Debug().Uint64("seq", d.Seq).Str("query", d.Query).Msg("book search dispatched")

	books, err := v.root.gateway.SearchBooks(context.Background(), d.Query)
	fyne.Do(func() {
		if !v.debouncer.IsCurrent(d.Seq) || !v.root.isCurrent(v.token) {
			return
		}
		if err != nil {
			v.root.fail(err)
			return
		}
		v.render(books)
	})
}

// render rebuilds the card grid for the given books, recomputing the role so
// action buttons always match the current session.
func (v *booksView) render(books []model.Book) {
	role := v.root.session.Role()

	if role == model.RoleAdmin {
		v.addBtn.Show()
	} else {
		v.addBtn.Hide()
	}

	v.grid.Objects = nil
	for _, book := range books {
		v.grid.Objects = append(v.grid.Objects, v.bookCard(book, role))
	}
	v.grid.Refresh()

	if len(books) == 0 {
		v.setStatus(v.root.localization.GetText(KeyNoBooksFound))
	} else {
		v.setStatus("")
	}
}

func (v *booksView) bookCard(book model.Book, role model.Role) fyne.CanvasObject {
	loc := v.root.localization

	authors := book.AuthorNames()
	if authors == "" {
		authors = DashPlaceholder
	}

	ratingLabel := widget.NewLabel(v.root.ratingLine(book))

	description := widget.NewLabel(model.TruncateDescription(book.Description, model.CardDescriptionLimit))
	description.Wrapping = fyne.TextWrapWord

	body := container.NewVBox(ratingLabel)
	if mine, ok := v.root.myRating(book); ok {
		myLabel := widget.NewLabel(fmt.Sprintf(loc.GetText(KeyYourRating), model.StarString(mine)))
		body.Objects = append(body.Objects, myLabel)
	}
	body.Objects = append(body.Objects, description)

	if actions := v.cardActions(book, role); actions != nil {
		body.Objects = append(body.Objects, actions)
	}

	card := widget.NewCard(book.Title, authors, body)
	return newTappableCard(card, func() {
		v.root.showBookDetail(book)
	})
}

func (v *booksView) cardActions(book model.Book, role model.Role) fyne.CanvasObject {
	loc := v.root.localization

	var buttons []fyne.CanvasObject
	for _, action := range model.CardActions(role, model.KindBook) {
		switch action {
		case model.ActionRate:
			buttons = append(buttons, widget.NewButton(loc.GetText(KeyRate), func() {
				v.root.showRatingDialog(book)
			}))
		case model.ActionDownload:
			buttons = append(buttons, widget.NewButton(loc.GetText(KeyDownload), func() {
				v.root.showInfo(loc.GetText(KeyDownload), loc.GetText(KeyDownloadPending))
			}))
		case model.ActionEdit:
			buttons = append(buttons, widget.NewButton(loc.GetText(KeyEdit), func() {
				b := book
				v.root.showBookForm(&b)
			}))
		case model.ActionDelete:
			deleteBtn := widget.NewButton(loc.GetText(KeyDelete), func() {
				v.root.confirmDeleteBook(book)
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

func (v *booksView) setStatus(message string) {
	if message == "" {
		v.status.Hide()
		return
	}
	v.status.SetText(message)
	v.status.Show()
}
