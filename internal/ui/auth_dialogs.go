package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showLoginDialog asks for credentials and establishes a session on success.
func (ui *RootUI) showLoginDialog() {
	loc := ui.localization

	username := widget.NewEntry()
	password := widget.NewPasswordEntry()

	items := []*widget.FormItem{
		widget.NewFormItem(loc.GetText(KeyUsername), username),
		widget.NewFormItem(loc.GetText(KeyPassword), password),
	}

	dialog.ShowForm(loc.GetText(KeyLogin), loc.GetText(KeyLogin), loc.GetText(KeyCancel), items,
		func(submitted bool) {
			if !submitted {
				return
			}
			name := username.Text
			go func() {
				token, err := ui.gateway.Login(context.Background(), name, password.Text)
				if err != nil {
					ui.fail(err)
					return
				}
				ui.session.Login(token, name)
				fyne.Do(func() {
					ui.showToast(fmt.Sprintf(loc.GetText(KeyLoginSuccess), name))
					ui.onAuthChanged()
				})
			}()
		}, ui.window)
}

// showRegisterDialog creates an account; the user still logs in afterwards.
func (ui *RootUI) showRegisterDialog() {
	loc := ui.localization

	username := widget.NewEntry()
	email := widget.NewEntry()
	password := widget.NewPasswordEntry()

	items := []*widget.FormItem{
		widget.NewFormItem(loc.GetText(KeyUsername), username),
		widget.NewFormItem(loc.GetText(KeyEmail), email),
		widget.NewFormItem(loc.GetText(KeyPassword), password),
	}

	dialog.ShowForm(loc.GetText(KeyRegister), loc.GetText(KeyRegister), loc.GetText(KeyCancel), items,
		func(submitted bool) {
			if !submitted {
				return
			}
			go func() {
				err := ui.gateway.Register(context.Background(), username.Text, email.Text, password.Text)
				if err != nil {
					ui.fail(err)
					return
				}
				fyne.Do(func() {
					ui.showToast(loc.GetText(KeyRegisterSuccess))
					ui.showLoginDialog()
				})
			}()
		}, ui.window)
}
