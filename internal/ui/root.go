package ui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/bookget/bookdesk/internal/api"
	"github.com/bookget/bookdesk/internal/config"
	"github.com/bookget/bookdesk/internal/logger"
	"github.com/bookget/bookdesk/internal/model"
	"github.com/bookget/bookdesk/internal/session"
)

// View identifies the top-level screens reachable from the navigation bar.
type View int

const (
	ViewBooks View = iota
	ViewAuthors
	ViewUsers
)

// String returns the English label for the view, used in logs.
func (v View) String() string {
	switch v {
	case ViewBooks:
		return "books"
	case ViewAuthors:
		return "authors"
	case ViewUsers:
		return "users"
	default:
		return "unknown"
	}
}

// RootUI owns the window chrome: navigation, auth controls and the content
// region the views render into. Each view switch mints a fresh view token;
// async continuations compare their captured token against the current one
// and drop their result when the user has navigated away.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	gateway      api.Gateway
	session      *session.Manager
	settings     *config.Settings
	localization *Localization

	booksBtn   *widget.Button
	authorsBtn *widget.Button
	usersBtn   *widget.Button
	authBox    *fyne.Container
	content    *fyne.Container

	booksView   *booksView
	authorsView *authorsView
	usersView   *usersView

	mu           sync.Mutex
	currentView  View
	viewToken    string
	authorsIndex []model.Author
	myRatings    map[int]float64
}

// NewRootUI creates and initializes the main UI. The initial view is not
// loaded automatically; the caller shows it once the window is ready.
func NewRootUI(window fyne.Window, app fyne.App, gateway api.Gateway, sess *session.Manager, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		gateway:      gateway,
		session:      sess,
		settings:     settings,
		localization: localization,
		myRatings:    make(map[int]float64),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.booksView = newBooksView(ui)
	ui.authorsView = newAuthorsView(ui)
	ui.usersView = newUsersView(ui)

	ui.setupUI()

	log := logger.Get()
	log.Debug().Str("role", ui.session.Role().String()).Msg("root UI initialized")

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.booksBtn = widget.NewButton(ui.localization.GetText(KeyBooks), func() { ui.ShowBooks() })
	ui.authorsBtn = widget.NewButton(ui.localization.GetText(KeyAuthors), func() { ui.ShowAuthors() })
	ui.usersBtn = widget.NewButton(ui.localization.GetText(KeyUsers), func() { ui.ShowUsers() })

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.authBox = container.NewHBox()
	ui.refreshAuthBox()

	navBar := container.NewBorder(nil, nil,
		container.NewHBox(ui.booksBtn, ui.authorsBtn, ui.usersBtn),
		container.NewHBox(ui.authBox, settingsBtn),
	)

	ui.content = container.NewStack()

	ui.window.SetContent(container.NewBorder(navBar, nil, nil, nil, ui.content))
	ui.applyRoleVisibility()
}

// ShowBooks switches to the books view and loads the catalog.
func (ui *RootUI) ShowBooks() {
	ui.showBooks(nil)
}

// showBooks switches to the books view; onLoaded runs once that load's
// result has rendered, and is skipped when the user navigates away first.
func (ui *RootUI) showBooks(onLoaded func(books []model.Book)) {
	token := ui.beginView(ViewBooks)
	ui.setContent(ui.booksView.Container())
	ui.booksView.load(token, onLoaded)
}

// ShowAuthors switches to the authors view and loads the author list.
func (ui *RootUI) ShowAuthors() {
	ui.showAuthors(nil)
}

func (ui *RootUI) showAuthors(onLoaded func(authors []model.Author)) {
	token := ui.beginView(ViewAuthors)
	ui.setContent(ui.authorsView.Container())
	ui.authorsView.load(token, onLoaded)
}

// ShowUsers switches to the admin user list.
func (ui *RootUI) ShowUsers() {
	token := ui.beginView(ViewUsers)
	ui.setContent(ui.usersView.Container())
	ui.usersView.load(token)
}

// reloadCurrent refreshes whichever view is on screen, minting a new token.
func (ui *RootUI) reloadCurrent() {
	ui.mu.Lock()
	view := ui.currentView
	ui.mu.Unlock()

	switch view {
	case ViewAuthors:
		ui.ShowAuthors()
	case ViewUsers:
		ui.ShowUsers()
	default:
		ui.ShowBooks()
	}
}

// beginView records the new current view and mints its token.
func (ui *RootUI) beginView(v View) string {
	ui.mu.Lock()
	ui.currentView = v
	ui.viewToken = uuid.NewString()
	token := ui.viewToken
	ui.mu.Unlock()

	ui.highlightNav(v)

	logger.Get().Debug().Str("view", v.String()).Msg("view switched")
	return token
}

// isCurrent reports whether token still belongs to the view on screen.
func (ui *RootUI) isCurrent(token string) bool {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return token == ui.viewToken
}

func (ui *RootUI) setContent(view fyne.CanvasObject) {
	ui.content.Objects = []fyne.CanvasObject{view}
	ui.content.Refresh()
}

func (ui *RootUI) highlightNav(v View) {
	ui.booksBtn.Importance = widget.MediumImportance
	ui.authorsBtn.Importance = widget.MediumImportance
	ui.usersBtn.Importance = widget.MediumImportance
	switch v {
	case ViewBooks:
		ui.booksBtn.Importance = widget.HighImportance
	case ViewAuthors:
		ui.authorsBtn.Importance = widget.HighImportance
	case ViewUsers:
		ui.usersBtn.Importance = widget.HighImportance
	}
	ui.booksBtn.Refresh()
	ui.authorsBtn.Refresh()
	ui.usersBtn.Refresh()
}

// applyRoleVisibility hides the admin-only navigation entries for everyone
// else. Called after every login/logout.
func (ui *RootUI) applyRoleVisibility() {
	if ui.session.Role() == model.RoleAdmin {
		ui.usersBtn.Show()
	} else {
		ui.usersBtn.Hide()
	}
}

// refreshAuthBox rebuilds the auth corner: login/register buttons when
// anonymous, the username and a logout button otherwise.
func (ui *RootUI) refreshAuthBox() {
	ui.authBox.Objects = nil

	if ui.session.IsAuthenticated() {
		userLabel := widget.NewLabel(fmt.Sprintf(ui.localization.GetText(KeyLoggedInAs), ui.session.Username()))
		logoutBtn := widget.NewButton(ui.localization.GetText(KeyLogout), ui.onLogout)
		logoutBtn.Importance = widget.LowImportance
		ui.authBox.Objects = append(ui.authBox.Objects, userLabel, logoutBtn)
	} else {
		loginBtn := widget.NewButton(ui.localization.GetText(KeyLogin), ui.showLoginDialog)
		loginBtn.Importance = widget.HighImportance
		registerBtn := widget.NewButton(ui.localization.GetText(KeyRegister), ui.showRegisterDialog)
		ui.authBox.Objects = append(ui.authBox.Objects, loginBtn, registerBtn)
	}

	ui.authBox.Refresh()
}

// onLogout clears the session and rerenders for the anonymous role.
func (ui *RootUI) onLogout() {
	ui.session.Logout()

	ui.mu.Lock()
	ui.myRatings = make(map[int]float64)
	ui.mu.Unlock()

	ui.refreshAuthBox()
	ui.applyRoleVisibility()
	ui.ShowBooks()
}

// onAuthChanged rerenders everything that depends on the session after a
// successful login.
func (ui *RootUI) onAuthChanged() {
	ui.refreshAuthBox()
	ui.applyRoleVisibility()
	ui.reloadCurrent()
}

// recordRating remembers a rating submitted in this session so book cards can
// show it; the backend does not expose which stored rating is ours.
func (ui *RootUI) recordRating(bookID int, value float64) {
	ui.mu.Lock()
	ui.myRatings[bookID] = value
	ui.mu.Unlock()
}

// myRating returns the rating for bookID: the one submitted this session if
// any, otherwise the stored one matching the token's user id.
func (ui *RootUI) myRating(book model.Book) (float64, bool) {
	ui.mu.Lock()
	value, ok := ui.myRatings[book.ID]
	ui.mu.Unlock()
	if ok {
		return value, true
	}
	if userID, ok := ui.session.UserID(); ok {
		return book.UserRatingFor(userID)
	}
	return 0, false
}

// ratingLine formats a book's average rating with the number of ratings
// behind it, or the not-rated placeholder.
func (ui *RootUI) ratingLine(book model.Book) string {
	loc := ui.localization
	if len(book.UserRatings) == 0 {
		return loc.GetText(KeyNotRatedYet)
	}
	return fmt.Sprintf(loc.GetText(KeyAverageRating),
		model.StarString(book.Rating), book.Rating, len(book.UserRatings))
}

// loadAuthorsIndex refreshes the cached author list used by the book form's
// author picker. Best effort, failures only logged.
func (ui *RootUI) loadAuthorsIndex() {
	go func() {
		authors, err := ui.gateway.ListAuthors(context.Background())
		if err != nil {
			logger.Get().Debug().Err(err).Msg("authors index load failed")
			return
		}
		ui.mu.Lock()
		ui.authorsIndex = authors
		ui.mu.Unlock()
	}()
}

func (ui *RootUI) cachedAuthors() []model.Author {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	out := make([]model.Author, len(ui.authorsIndex))
	copy(out, ui.authorsIndex)
	return out
}

// openBookByID follows a book link from an author detail: switch to the
// books view, then open the book's detail once the fresh list has rendered.
func (ui *RootUI) openBookByID(id int) {
	ui.showBooks(func(books []model.Book) {
		for _, book := range books {
			if book.ID == id {
				ui.showBookDetail(book)
				return
			}
		}
	})
}

// openAuthorByID follows an author link from a book detail the same way.
func (ui *RootUI) openAuthorByID(id int) {
	ui.showAuthors(func(authors []model.Author) {
		for _, author := range authors {
			if author.ID == id {
				ui.showAuthorDetail(author)
				return
			}
		}
	})
}

// fail surfaces a gateway error as a toast. Safe to call from any goroutine.
func (ui *RootUI) fail(err error) {
	logger.Get().Error().Err(err).Msg("operation failed")
	fyne.Do(func() {
		ui.showToast(api.FailureReason(err))
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
	})
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.booksBtn.SetText(ui.localization.GetText(KeyBooks))
	ui.authorsBtn.SetText(ui.localization.GetText(KeyAuthors))
	ui.usersBtn.SetText(ui.localization.GetText(KeyUsers))
	ui.refreshAuthBox()
	ui.reloadCurrent()
}
