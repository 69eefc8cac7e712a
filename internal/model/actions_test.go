package model

import "testing"

func actionSet(actions []Action) map[Action]bool {
	set := make(map[Action]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return set
}

func assertActions(t *testing.T, got []Action, expected ...Action) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("got %d actions %v, expected %d %v", len(got), got, len(expected), expected)
	}
	set := actionSet(got)
	for _, a := range expected {
		if !set[a] {
			t.Errorf("missing action %s in %v", a, got)
		}
	}
}

func TestCardActions(t *testing.T) {
	tests := []struct {
		role     Role
		kind     EntityKind
		expected []Action
	}{
		{RoleAdmin, KindBook, []Action{ActionRate, ActionEdit, ActionDelete}},
		{RoleUser, KindBook, []Action{ActionRate, ActionDownload}},
		{RoleAnonymous, KindBook, nil},
		{RoleAdmin, KindAuthor, []Action{ActionEdit, ActionDelete}},
		{RoleUser, KindAuthor, nil},
		{RoleAnonymous, KindAuthor, nil},
	}

	for _, test := range tests {
		got := CardActions(test.role, test.kind)
		assertActions(t, got, test.expected...)
	}
}

func TestDetailActions(t *testing.T) {
	tests := []struct {
		role     Role
		kind     EntityKind
		expected []Action
	}{
		{RoleAdmin, KindBook, []Action{ActionEdit, ActionRate}},
		{RoleUser, KindBook, []Action{ActionDownload, ActionRate}},
		{RoleAnonymous, KindBook, nil},
		{RoleAdmin, KindAuthor, []Action{ActionEdit}},
		// Author detail exposes edit to any authenticated user, unlike the card.
		{RoleUser, KindAuthor, []Action{ActionEdit}},
		{RoleAnonymous, KindAuthor, nil},
	}

	for _, test := range tests {
		got := DetailActions(test.role, test.kind)
		assertActions(t, got, test.expected...)
	}
}

func TestDetailNeverShowsDelete(t *testing.T) {
	roles := []Role{RoleAnonymous, RoleUser, RoleAdmin}
	kinds := []EntityKind{KindBook, KindAuthor}

	for _, role := range roles {
		for _, kind := range kinds {
			for _, a := range DetailActions(role, kind) {
				if a == ActionDelete {
					t.Errorf("DetailActions(%s, %s) exposes delete", role, kind)
				}
			}
		}
	}
}

func TestRoleFor(t *testing.T) {
	tests := []struct {
		username string
		expected Role
	}{
		{"", RoleAnonymous},
		{"Admin", RoleAdmin},
		{"alice", RoleUser},
		{"admin", RoleUser}, // sentinel comparison is case sensitive
	}

	for _, test := range tests {
		if got := RoleFor(test.username); got != test.expected {
			t.Errorf("RoleFor(%q) = %s, expected %s", test.username, got, test.expected)
		}
	}
}
