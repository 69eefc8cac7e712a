package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// tappableCard wraps a card so tapping anywhere outside its buttons opens
// the detail dialog.
type tappableCard struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	onTapped func()
}

var _ fyne.Tappable = (*tappableCard)(nil)

func newTappableCard(content fyne.CanvasObject, onTapped func()) *tappableCard {
	c := &tappableCard{content: content, onTapped: onTapped}
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget.
func (c *tappableCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content)
}

// Tapped implements fyne.Tappable.
func (c *tappableCard) Tapped(_ *fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}
