package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/medflow/medflow/config"
	redisadapter "github.com/medflow/medflow/internal/adapters/redis"
	"github.com/medflow/medflow/internal/data"
	"github.com/medflow/medflow/internal/service"
	"github.com/redis/go-redis/v9"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth           *service.AuthService
	Appointments   *service.AppointmentService
	MedicalRecords *service.MedicalRecordService
	LeaveRequests  *service.LeaveRequestService
	Insurance      *service.InsuranceService
	Dashboard      *service.DashboardService
	Staff          *service.StaffService
	Notices        *redisadapter.NoticeStore
	Profiles       *data.ProfileRepo
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	Profiles       *data.ProfileRepo
	Appointments   *data.AppointmentRepo
	MedicalRecords *data.MedicalRecordRepo
	LeaveRequests  *data.LeaveRequestRepo
	Insurance      *data.InsuranceRepo
	Stats          *data.StatsRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB) *serviceRepositories {
	return &serviceRepositories{
		Profiles:       data.NewProfileRepo(db),
		Appointments:   data.NewAppointmentRepo(db),
		MedicalRecords: data.NewMedicalRecordRepo(db),
		LeaveRequests:  data.NewLeaveRequestRepo(db),
		Insurance:      data.NewInsuranceRepo(db),
		Stats:          data.NewStatsRepo(db),
	}
}

// BuildServices constructs the full service container from shared
// infrastructure handles.
func BuildServices(ctx context.Context, deps ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := buildRepositories(deps.DB)

	authContainer, err := BuildAuthService(ctx, AuthDeps{
		Auth:        deps.Config.Auth,
		RedisClient: deps.RedisClient,
		Profiles:    repos.Profiles,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	return ServiceContainer{
		Auth: authContainer.Auth,
		Appointments: service.NewAppointmentService(service.AppointmentServiceOptions{
			Appointments: repos.Appointments,
		}),
		MedicalRecords: service.NewMedicalRecordService(service.MedicalRecordServiceOptions{
			Records: repos.MedicalRecords,
		}),
		LeaveRequests: service.NewLeaveRequestService(service.LeaveRequestServiceOptions{
			Leave: repos.LeaveRequests,
		}),
		Insurance: service.NewInsuranceService(service.InsuranceServiceOptions{
			Insurance: repos.Insurance,
		}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Stats: repos.Stats,
		}),
		Staff: service.NewStaffService(service.StaffServiceOptions{
			Profiles: repos.Profiles,
		}),
		Notices:  authContainer.Notices,
		Profiles: repos.Profiles,
	}, nil
}
