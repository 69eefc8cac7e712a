package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/bookget/bookdesk/internal/logger"
	"github.com/bookget/bookdesk/internal/model"
)

// ratingState tracks the rating dialog's lifecycle so a double-tap on Submit
// cannot fire two requests.
type ratingState int

const (
	ratingSelecting ratingState = iota
	ratingSubmitting
)

// showRatingDialog opens the star picker for a book. The dialog closes as
// soon as Submit passes validation; the request then runs in the background
// and the list refreshes on success.
func (ui *RootUI) showRatingDialog(book model.Book) {
	loc := ui.localization

	state := ratingSelecting
	selected := 0
	if mine, ok := ui.myRating(book); ok {
		selected = model.FilledStars(mine)
	}

	hint := widget.NewLabel(loc.GetText(KeySelectRating))
	stars := NewStarRating(selected, func(value int) {
		selected = value
		hint.SetText(model.StarString(float64(value)))
	})

	content := container.NewVBox(stars, hint)

	var d dialog.Dialog
	submitBtn := widget.NewButton(loc.GetText(KeySubmit), func() {
		if state == ratingSubmitting {
			return
		}
		if err := model.ValidateRating(float64(selected)); err != nil {
			hint.SetText(loc.GetText(KeySelectRating))
			return
		}
		state = ratingSubmitting

		// Close before the request completes; a failure is surfaced as a
		// toast over whatever view is on screen.
		d.Hide()
		ui.submitRating(book, float64(selected))
	})
	submitBtn.Importance = widget.HighImportance

	cancelBtn := widget.NewButton(loc.GetText(KeyCancel), func() { d.Hide() })

	buttons := container.NewHBox(cancelBtn, submitBtn)
	d = dialog.NewCustomWithoutButtons(
		fmt.Sprintf(loc.GetText(KeyRateBookTitle), book.Title),
		container.NewVBox(content, buttons),
		ui.window,
	)
	d.Show()
}

func (ui *RootUI) submitRating(book model.Book, value float64) {
	go func() {
		updated, err := ui.gateway.RateBook(context.Background(), book.ID, value)
		if err != nil {
			ui.fail(err)
			return
		}

		logger.Get().Debug().Int("book_id", updated.ID).Float64("rating", value).
			Msg("rating submitted")
		ui.recordRating(book.ID, value)

		fyne.Do(func() {
			ui.showToast(ui.localization.GetText(KeyRatingSubmitted))
			ui.reloadCurrent()
		})
	}()
}
