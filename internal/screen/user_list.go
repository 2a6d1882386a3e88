package screen

import (
	"context"
	"strings"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// UserList is the admin portal's user management screen.
type UserList struct {
	log      *logrus.Logger
	users    repository.UserRepository
	notifier Notifier

	phase      Phase
	items      []entity.User
	search     string
	typeFilter string
}

func NewUserList(log *logrus.Logger, users repository.UserRepository, notifier Notifier) *UserList {
	return &UserList{
		log:        log,
		users:      users,
		notifier:   notifier,
		typeFilter: FilterAll,
	}
}

func (s *UserList) Phase() Phase {
	return s.phase
}

func (s *UserList) Load(ctx context.Context) {
	s.phase = PhaseLoading
	items, err := s.users.List(ctx)
	if err != nil {
		s.log.Warnf("Failed to load users: %+v", err)
		s.items = nil
		s.notifier.Error("Failed to load users")
	} else {
		s.items = items
	}
	s.phase = PhaseReady
}

func (s *UserList) SetSearch(query string) {
	s.search = query
}

func (s *UserList) SetTypeFilter(userType string) {
	s.typeFilter = userType
}

// Visible applies the search text and type filter to the fetched list. The
// filtering is purely client-side, matching by name or email.
func (s *UserList) Visible() []entity.User {
	visible := make([]entity.User, 0, len(s.items))
	needle := strings.ToLower(s.search)
	for _, u := range s.items {
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.FullName), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		if s.typeFilter != FilterAll && string(u.UserType) != s.typeFilter {
			continue
		}
		visible = append(visible, u)
	}
	return visible
}
