package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/bookget/bookdesk/internal/model"
)

func TestStarRatingCommit(t *testing.T) {
	test.NewApp()

	var changed []int
	r := NewStarRating(0, func(v int) { changed = append(changed, v) })

	r.commit(4)
	if r.Value() != 4 {
		t.Errorf("Expected committed value 4, got %d", r.Value())
	}
	if len(changed) != 1 || changed[0] != 4 {
		t.Errorf("Expected OnChanged fired with 4, got %v", changed)
	}

	for i, slot := range r.slots {
		want := model.StarEmpty
		if i < 4 {
			want = model.StarFilled
		}
		if slot.text.Text != want {
			t.Errorf("Slot %d: expected %q, got %q", i, want, slot.text.Text)
		}
	}
}

func TestStarRatingPreviewReverts(t *testing.T) {
	test.NewApp()

	r := NewStarRating(2, nil)

	r.preview(5)
	if r.slots[4].text.Text != model.StarFilled {
		t.Error("Expected preview to fill fifth star")
	}
	if r.Value() != 2 {
		t.Errorf("Expected preview to leave committed value at 2, got %d", r.Value())
	}

	r.revert()
	if r.slots[2].text.Text != model.StarEmpty {
		t.Error("Expected revert to restore committed selection")
	}
	if r.slots[1].text.Text != model.StarFilled {
		t.Error("Expected committed stars to stay filled after revert")
	}
}

func TestStarRatingSetValueSkipsCallback(t *testing.T) {
	test.NewApp()

	fired := false
	r := NewStarRating(0, func(int) { fired = true })

	r.SetValue(3)
	if r.Value() != 3 {
		t.Errorf("Expected value 3, got %d", r.Value())
	}
	if fired {
		t.Error("Expected SetValue not to fire OnChanged")
	}
}
