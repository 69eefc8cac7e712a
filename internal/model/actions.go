package model

// Action is a user-triggerable operation attached to a card or detail view.
type Action int

const (
	ActionRate Action = iota
	ActionDownload
	ActionEdit
	ActionDelete
)

// String returns the action's identifier for logs and tests.
func (a Action) String() string {
	switch a {
	case ActionRate:
		return "rate"
	case ActionDownload:
		return "download"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// EntityKind distinguishes the two card types in the catalog.
type EntityKind int

const (
	KindBook EntityKind = iota
	KindAuthor
)

// String returns the kind's identifier for logs and tests.
func (k EntityKind) String() string {
	switch k {
	case KindBook:
		return "book"
	case KindAuthor:
		return "author"
	default:
		return "unknown"
	}
}

// CardActions returns the action buttons shown on a summary card. The result
// is a pure function of role and entity kind.
func CardActions(role Role, kind EntityKind) []Action {
	switch kind {
	case KindBook:
		switch role {
		case RoleAdmin:
			return []Action{ActionRate, ActionEdit, ActionDelete}
		case RoleUser:
			return []Action{ActionRate, ActionDownload}
		}
	case KindAuthor:
		if role == RoleAdmin {
			return []Action{ActionEdit, ActionDelete}
		}
	}
	return nil
}

// DetailActions returns the action buttons shown on a detail view. Author
// details additionally expose edit to any authenticated user; the detail
// view never shows delete.
func DetailActions(role Role, kind EntityKind) []Action {
	switch kind {
	case KindBook:
		switch role {
		case RoleAdmin:
			return []Action{ActionEdit, ActionRate}
		case RoleUser:
			return []Action{ActionDownload, ActionRate}
		}
	case KindAuthor:
		if role == RoleAdmin || role == RoleUser {
			return []Action{ActionEdit}
		}
	}
	return nil
}
