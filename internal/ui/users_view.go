package ui

import (
	"context"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/bookget/bookdesk/internal/model"
)

// usersView is the admin-only account list. Rendered as plain rows rather
// than cards; there is no search on users.
type usersView struct {
	root *RootUI

	status *widget.Label
	rows   *fyne.Container
	box    *fyne.Container

	token string
}

func newUsersView(root *RootUI) *usersView {
	v := &usersView{root: root}

	v.status = widget.NewLabel("")
	v.status.Hide()

	v.rows = container.NewVBox()
	v.box = container.NewBorder(v.status, nil, nil, nil, container.NewVScroll(v.rows))

	return v
}

// Container returns the view's root canvas object.
func (v *usersView) Container() fyne.CanvasObject {
	return v.box
}

func (v *usersView) load(token string) {
	v.token = token
	v.setStatus(v.root.localization.GetText(KeyLoading))

	go func() {
		users, err := v.root.gateway.ListUsers(context.Background())
		fyne.Do(func() {
			if !v.root.isCurrent(token) {
				return
			}
			if err != nil {
				v.setStatus("")
				v.root.fail(err)
				return
			}
			v.render(users)
		})
	}()
}

func (v *usersView) render(users []model.User) {
	v.rows.Objects = nil
	for _, user := range users {
		v.rows.Objects = append(v.rows.Objects, v.userRow(user))
	}
	v.rows.Refresh()
	v.setStatus("")
}

func (v *usersView) userRow(user model.User) fyne.CanvasObject {
	loc := v.root.localization

	nameLabel := widget.NewLabel(user.Username)
	nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	emailLabel := widget.NewLabel(user.Email)
	idLabel := widget.NewLabel("#" + strconv.Itoa(user.ID))

	active := DashPlaceholder
	if user.IsActive {
		active = "✓"
	}
	activeLabel := widget.NewLabel(active)

	deleteBtn := widget.NewButton(loc.GetText(KeyDelete), func() {
		v.confirmDelete(user)
	})
	deleteBtn.Importance = widget.DangerImportance
	// The admin cannot delete their own account from here
	if user.Username == v.root.session.Username() {
		deleteBtn.Disable()
	}

	return container.NewGridWithColumns(5, idLabel, nameLabel, emailLabel, activeLabel, deleteBtn)
}

func (v *usersView) confirmDelete(user model.User) {
	loc := v.root.localization
	v.root.showConfirm(loc.GetText(KeyConfirmDelete),
		fmt.Sprintf(loc.GetText(KeyConfirmDeleteUser), user.Username), func() {
			go func() {
				if err := v.root.gateway.DeleteUser(context.Background(), user.ID); err != nil {
					v.root.fail(err)
					return
				}
				fyne.Do(func() {
					v.root.showToast(loc.GetText(KeyUserDeleted))
					v.root.ShowUsers()
				})
			}()
		})
}

func (v *usersView) setStatus(message string) {
	if message == "" {
		v.status.Hide()
		return
	}
	v.status.SetText(message)
	v.status.Show()
}
