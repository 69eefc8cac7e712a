package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyBooks             = "books"
	KeyAuthors           = "authors"
	KeyUsers             = "users"
	KeyLogin             = "login"
	KeyLogout            = "logout"
	KeyRegister          = "register"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyServerURL         = "server_url"
	KeyRestartHint       = "restart_hint"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySubmit            = "submit"
	KeyClose             = "close"
	KeyDelete            = "delete"
	KeyEdit              = "edit"
	KeyRate              = "rate"
	KeyDownload          = "download"
	KeyAddBook           = "add_book"
	KeyAddAuthor         = "add_author"
	KeyUsername          = "username"
	KeyPassword          = "password"
	KeyEmail             = "email"
	KeyTitle             = "title"
	KeyISBN              = "isbn"
	KeyYear              = "year"
	KeyDescription       = "description"
	KeyName              = "name"
	KeyBiography         = "biography"
	KeySearchBooks       = "search_books"
	KeySearchAuthors     = "search_authors"
	KeyNoBooksFound      = "no_books_found"
	KeyNoAuthorsFound    = "no_authors_found"
	KeyNoDescription     = "no_description"
	KeyNoBiography       = "no_biography"
	KeyYourRating        = "your_rating"
	KeyAverageRating     = "average_rating"
	KeyNotRatedYet       = "not_rated_yet"
	KeyRateBookTitle     = "rate_book_title"
	KeySelectRating      = "select_rating"
	KeyRatingSubmitted   = "rating_submitted"
	KeyLoggedInAs        = "logged_in_as"
	KeyLoginSuccess      = "login_success"
	KeyRegisterSuccess   = "register_success"
	KeyConfirmDelete     = "confirm_delete"
	KeyConfirmDeleteBook = "confirm_delete_book"
	KeyConfirmDeleteAuth = "confirm_delete_author"
	KeyConfirmDeleteUser = "confirm_delete_user"
	KeyBookSaved         = "book_saved"
	KeyBookDeleted       = "book_deleted"
	KeyAuthorSaved       = "author_saved"
	KeyAuthorDeleted     = "author_deleted"
	KeyUserDeleted       = "user_deleted"
	KeyCascadeDeleted    = "cascade_deleted"
	KeyDownloadPending   = "download_pending"
	KeyInvalidYear       = "invalid_year"
	KeyTitleRequired     = "title_required"
	KeyNameRequired      = "name_required"
	KeyAuthorRequired    = "author_required"
	KeyLoading           = "loading"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Book Catalog",
		KeyBooks:             "Books",
		KeyAuthors:           "Authors",
		KeyUsers:             "Users",
		KeyLogin:             "Login",
		KeyLogout:            "Logout",
		KeyRegister:          "Register",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyServerURL:         "Server URL",
		KeyRestartHint:       "Server URL changes take effect after restart",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySubmit:            "Submit",
		KeyClose:             "Close",
		KeyDelete:            "Delete",
		KeyEdit:              "Edit",
		KeyRate:              "Rate",
		KeyDownload:          "Download",
		KeyAddBook:           "Add Book",
		KeyAddAuthor:         "Add Author",
		KeyUsername:          "Username",
		KeyPassword:          "Password",
		KeyEmail:             "Email",
		KeyTitle:             "Title",
		KeyISBN:              "ISBN",
		KeyYear:              "Publication Year",
		KeyDescription:       "Description",
		KeyName:              "Name",
		KeyBiography:         "Biography",
		KeySearchBooks:       "Search by title, ISBN, or year...",
		KeySearchAuthors:     "Search authors by name...",
		KeyNoBooksFound:      "No books found",
		KeyNoAuthorsFound:    "No authors found",
		KeyNoDescription:     "No description available",
		KeyNoBiography:       "No biography available",
		KeyYourRating:        "Your rating: %s",
		KeyAverageRating:     "Average rating: %s (%.1f from %d ratings)",
		KeyNotRatedYet:       "Not rated yet",
		KeyRateBookTitle:     "Rate %q",
		KeySelectRating:      "Select a rating from 1 to 5",
		KeyRatingSubmitted:   "Rating submitted",
		KeyLoggedInAs:        "Logged in as %s",
		KeyLoginSuccess:      "Welcome, %s!",
		KeyRegisterSuccess:   "Registration successful, you can log in now",
		KeyConfirmDelete:     "Confirm deletion",
		KeyConfirmDeleteBook: "Delete book %q? This cannot be undone.",
		KeyConfirmDeleteAuth: "Delete author %q? Books left without any author will be deleted too.",
		KeyConfirmDeleteUser: "Delete user %q?",
		KeyBookSaved:         "Book saved",
		KeyBookDeleted:       "Book deleted",
		KeyAuthorSaved:       "Author saved",
		KeyAuthorDeleted:     "Author deleted",
		KeyUserDeleted:       "User deleted",
		KeyCascadeDeleted:    "Book %q deleted because it had no authors left.",
		KeyDownloadPending:   "Download functionality will be implemented later",
		KeyInvalidYear:       "Publication year must be a number",
		KeyTitleRequired:     "Title is required",
		KeyNameRequired:      "Name is required",
		KeyAuthorRequired:    "Select at least one author",
		KeyLoading:           "Loading...",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Каталог книг",
		KeyBooks:             "Книги",
		KeyAuthors:           "Авторы",
		KeyUsers:             "Пользователи",
		KeyLogin:             "Войти",
		KeyLogout:            "Выйти",
		KeyRegister:          "Регистрация",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyServerURL:         "Адрес сервера",
		KeyRestartHint:       "Изменение адреса сервера вступит в силу после перезапуска",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySubmit:            "Отправить",
		KeyClose:             "Закрыть",
		KeyDelete:            "Удалить",
		KeyEdit:              "Изменить",
		KeyRate:              "Оценить",
		KeyDownload:          "Скачать",
		KeyAddBook:           "Добавить книгу",
		KeyAddAuthor:         "Добавить автора",
		KeyUsername:          "Имя пользователя",
		KeyPassword:          "Пароль",
		KeyEmail:             "Эл. почта",
		KeyTitle:             "Название",
		KeyISBN:              "ISBN",
		KeyYear:              "Год издания",
		KeyDescription:       "Описание",
		KeyName:              "Имя",
		KeyBiography:         "Биография",
		KeySearchBooks:       "Поиск по названию, ISBN или году...",
		KeySearchAuthors:     "Поиск авторов по имени...",
		KeyNoBooksFound:      "Книги не найдены",
		KeyNoAuthorsFound:    "Авторы не найдены",
		KeyNoDescription:     "Описание отсутствует",
		KeyNoBiography:       "Биография отсутствует",
		KeyYourRating:        "Ваша оценка: %s",
		KeyAverageRating:     "Средняя оценка: %s (%.1f из %d оценок)",
		KeyNotRatedYet:       "Оценок пока нет",
		KeyRateBookTitle:     "Оценить %q",
		KeySelectRating:      "Выберите оценку от 1 до 5",
		KeyRatingSubmitted:   "Оценка отправлена",
		KeyLoggedInAs:        "Вы вошли как %s",
		KeyLoginSuccess:      "Добро пожаловать, %s!",
		KeyRegisterSuccess:   "Регистрация успешна, теперь можно войти",
		KeyConfirmDelete:     "Подтверждение удаления",
		KeyConfirmDeleteBook: "Удалить книгу %q? Это действие необратимо.",
		KeyConfirmDeleteAuth: "Удалить автора %q? Книги без оставшихся авторов будут удалены тоже.",
		KeyConfirmDeleteUser: "Удалить пользователя %q?",
		KeyBookSaved:         "Книга сохранена",
		KeyBookDeleted:       "Книга удалена",
		KeyAuthorSaved:       "Автор сохранён",
		KeyAuthorDeleted:     "Автор удалён",
		KeyUserDeleted:       "Пользователь удалён",
		KeyCascadeDeleted:    "Книга %q удалена, так как у неё не осталось авторов.",
		KeyDownloadPending:   "Функция скачивания будет добавлена позже",
		KeyInvalidYear:       "Год издания должен быть числом",
		KeyTitleRequired:     "Название обязательно",
		KeyNameRequired:      "Имя обязательно",
		KeyAuthorRequired:    "Выберите хотя бы одного автора",
		KeyLoading:           "Загрузка...",
	}
}
