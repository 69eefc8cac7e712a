package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/bookget/bookdesk/internal/model"
)

var starColor = color.RGBA{R: 255, G: 179, B: 0, A: 255}

// StarRating is an interactive row of five stars. Hovering previews a value,
// tapping commits it; leaving without a tap reverts to the committed value.
type StarRating struct {
	widget.BaseWidget

	slots     []*starSlot
	value     int
	OnChanged func(value int)
}

// NewStarRating creates a star row committed to initial (0 for no selection).
func NewStarRating(initial int, onChanged func(int)) *StarRating {
	r := &StarRating{value: initial, OnChanged: onChanged}
	for i := 1; i <= model.StarSlots; i++ {
		r.slots = append(r.slots, newStarSlot(r, i))
	}
	r.ExtendBaseWidget(r)
	r.showFilled(r.value)
	return r
}

// Value returns the committed selection, 0 when nothing is selected yet.
func (r *StarRating) Value() int {
	return r.value
}

// SetValue commits a selection programmatically without firing OnChanged.
func (r *StarRating) SetValue(value int) {
	r.value = value
	r.showFilled(value)
}

// CreateRenderer implements fyne.Widget.
func (r *StarRating) CreateRenderer() fyne.WidgetRenderer {
	objects := make([]fyne.CanvasObject, len(r.slots))
	for i, slot := range r.slots {
		objects[i] = slot
	}
	return widget.NewSimpleRenderer(container.NewHBox(objects...))
}

// preview lights up the first n stars while hovering.
func (r *StarRating) preview(n int) {
	r.showFilled(n)
}

// revert restores the committed selection after the pointer leaves.
func (r *StarRating) revert() {
	r.showFilled(r.value)
}

// commit stores the tapped value and notifies the owner.
func (r *StarRating) commit(n int) {
	r.value = n
	r.showFilled(n)
	if r.OnChanged != nil {
		r.OnChanged(n)
	}
}

func (r *StarRating) showFilled(n int) {
	for i, slot := range r.slots {
		slot.setFilled(i < n)
	}
}

// starSlot is a single tappable, hoverable star.
type starSlot struct {
	widget.BaseWidget

	owner *StarRating
	index int
	text  *canvas.Text
}

var _ fyne.Tappable = (*starSlot)(nil)
var _ desktop.Hoverable = (*starSlot)(nil)

func newStarSlot(owner *StarRating, index int) *starSlot {
	s := &starSlot{owner: owner, index: index}
	s.text = canvas.NewText(model.StarEmpty, starColor)
	s.text.TextSize = 24
	s.ExtendBaseWidget(s)
	return s
}

func (s *starSlot) setFilled(filled bool) {
	if filled {
		s.text.Text = model.StarFilled
	} else {
		s.text.Text = model.StarEmpty
	}
	s.text.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (s *starSlot) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.text)
}

// Tapped commits this slot's value.
func (s *starSlot) Tapped(_ *fyne.PointEvent) {
	s.owner.commit(s.index)
}

// MouseIn previews this slot's value.
func (s *starSlot) MouseIn(_ *desktop.MouseEvent) {
	s.owner.preview(s.index)
}

// MouseMoved implements desktop.Hoverable.
func (s *starSlot) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut reverts the preview.
func (s *starSlot) MouseOut() {
	s.owner.revert()
}
