package screen

import (
	"context"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Dashboard is the admin portal landing screen.
type Dashboard struct {
	log      *logrus.Logger
	admin    repository.AdminRepository
	notifier Notifier

	phase Phase
	stats entity.DashboardStats
}

func NewDashboard(log *logrus.Logger, admin repository.AdminRepository, notifier Notifier) *Dashboard {
	return &Dashboard{
		log:      log,
		admin:    admin,
		notifier: notifier,
	}
}

func (s *Dashboard) Phase() Phase {
	return s.phase
}

func (s *Dashboard) Stats() entity.DashboardStats {
	return s.stats
}

func (s *Dashboard) Load(ctx context.Context) {
	s.phase = PhaseLoading
	stats, err := s.admin.Dashboard(ctx)
	if err != nil {
		s.log.Warnf("Failed to load dashboard stats: %+v", err)
		s.stats = entity.DashboardStats{}
		s.notifier.Error("Failed to load dashboard")
	} else {
		s.stats = *stats
	}
	s.phase = PhaseReady
}
