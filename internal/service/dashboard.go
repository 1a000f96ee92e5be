package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
	"github.com/medflow/medflow/internal/ports"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Stats ports.StatsRepository
	Now   func() time.Time // defaults to time.Now
}

// DashboardService assembles the landing-page counters. The five counts are
// independent queries, fetched in parallel.
type DashboardService struct {
	stats ports.StatsRepository
	now   func() time.Time
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &DashboardService{stats: opts.Stats, now: now}
}

// Stats returns the dashboard counters. Every authenticated role gets the
// same numbers; the dashboard is the shared landing page.
func (s *DashboardService) Stats(ctx context.Context, _ domainauth.Principal) (*model.DashboardStats, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var out model.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.stats.CountAppointmentsBetween(gctx, dayStart, dayEnd)
		out.AppointmentsToday = n
		return err
	})
	g.Go(func() error {
		n, err := s.stats.CountAppointmentsAfter(gctx, now)
		out.AppointmentsUpcoming = n
		return err
	})
	g.Go(func() error {
		n, err := s.stats.CountLeaveRequestsByStatus(gctx, model.LeavePending)
		out.PendingLeaveRequests = n
		return err
	})
	g.Go(func() error {
		n, err := s.stats.CountProfilesByRole(gctx, domainauth.RolePatient.StorageString())
		out.ActivePatients = n
		return err
	})
	g.Go(func() error {
		n, err := s.stats.CountUnverifiedInsurance(gctx)
		out.UnverifiedInsurance = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
