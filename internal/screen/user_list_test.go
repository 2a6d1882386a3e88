package screen

import (
	"context"
	"errors"
	"testing"

	"medibook-portals/internal/domain/entity"
)

func TestUserListClientSideFilters(t *testing.T) {
	repo := &fakeUsers{items: []entity.User{
		{ID: 1, FullName: "Rohit Sharma", Email: "rohit@x.y", UserType: entity.UserTypePatient},
		{ID: 2, FullName: "Dr. Mehta", Email: "mehta@x.y", UserType: entity.UserTypeDoctor},
		{ID: 3, FullName: "Admin", Email: "admin@x.y", UserType: entity.UserTypeAdmin},
	}}
	notifier := &notifierRecorder{}
	list := NewUserList(testLogger(), repo, notifier)
	ctx := context.Background()
	list.Load(ctx)

	if got := len(list.Visible()); got != 3 {
		t.Fatalf("visible = %d, want 3", got)
	}

	list.SetSearch("mehta")
	if visible := list.Visible(); len(visible) != 1 || visible[0].ID != 2 {
		t.Errorf("search result = %+v", visible)
	}

	list.SetSearch("")
	list.SetTypeFilter(string(entity.UserTypePatient))
	if visible := list.Visible(); len(visible) != 1 || visible[0].ID != 1 {
		t.Errorf("type filter result = %+v", visible)
	}
}

func TestUserListLoadFailure(t *testing.T) {
	repo := &fakeUsers{listErr: errors.New("boom")}
	notifier := &notifierRecorder{}
	list := NewUserList(testLogger(), repo, notifier)

	list.Load(context.Background())

	if list.Phase() != PhaseReady {
		t.Errorf("phase = %v", list.Phase())
	}
	if len(list.Visible()) != 0 || len(notifier.errors) != 1 {
		t.Errorf("visible = %v notifications = %v", list.Visible(), notifier.errors)
	}
}
