package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/ports"
	"github.com/medflow/medflow/internal/service"
)

// Route policies, declared once at registration time. An empty policy denies
// everything, so forgetting a role here fails closed.
var (
	policyAnyAuthenticated = domainauth.NewPolicy(
		domainauth.RoleAdmin, domainauth.RoleDoctor, domainauth.RoleNurse,
		domainauth.RoleReceptionist, domainauth.RolePatient,
	)
	policyClinical = domainauth.NewPolicy(
		domainauth.RoleAdmin, domainauth.RoleDoctor, domainauth.RoleNurse,
	)
	policyStaffOnly = domainauth.NewPolicy(
		domainauth.RoleAdmin, domainauth.RoleDoctor, domainauth.RoleNurse,
		domainauth.RoleReceptionist,
	)
	policyFrontDesk = domainauth.NewPolicy(
		domainauth.RoleAdmin, domainauth.RoleReceptionist,
	)
	policyAdmin = domainauth.NewPolicy(domainauth.RoleAdmin)
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth           *service.AuthService
	Appointments   *service.AppointmentService
	MedicalRecords *service.MedicalRecordService
	LeaveRequests  *service.LeaveRequestService
	Insurance      *service.InsuranceService
	Dashboard      *service.DashboardService
	Staff          *service.StaffService
	Notices        ports.NoticeSource
	CookieDomain   string
	Logger         *slog.Logger
}

// NewRouter creates and configures the HTTP router. Every /api subtree is
// wrapped in a Guard carrying its role policy; the guard decision happens
// before any handler code runs.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	mux.HandleFunc("POST /auth/login", authHandlers.Login)
	mux.HandleFunc("POST /auth/logout", authHandlers.Logout)
	mux.HandleFunc("POST /auth/refresh", authHandlers.Refresh)

	registerAppointmentRoutes(mux, services)
	registerMedicalRecordRoutes(mux, services)
	registerLeaveRequestRoutes(mux, services)
	registerInsuranceRoutes(mux, services)
	registerStaffRoutes(mux, services)

	anyAuthed := Guard(services.Auth, policyAnyAuthenticated)
	mux.Handle("GET /api/me", anyAuthed(http.HandlerFunc(authHandlers.Me)))
	mux.Handle("GET /api/dashboard",
		anyAuthed(http.HandlerFunc((&DashboardHandlers{Svc: services.Dashboard}).Stats)))
	noticeHandlers := &NoticeHandlers{Notices: services.Notices, Logger: services.Logger}
	mux.Handle("GET /api/notices", anyAuthed(http.HandlerFunc(noticeHandlers.Drain)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = mux
	handler = BrowserDetection()(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func registerAppointmentRoutes(mux *http.ServeMux, services RouterServices) {
	h := &AppointmentHandlers{Svc: services.Appointments}
	guard := Guard(services.Auth, policyAnyAuthenticated)
	mux.Handle("POST /api/appointments", guard(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/appointments", guard(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/appointments/{id}", guard(http.HandlerFunc(h.GetByID)))
	mux.Handle("PATCH /api/appointments/{id}", guard(http.HandlerFunc(h.Update)))
}

func registerMedicalRecordRoutes(mux *http.ServeMux, services RouterServices) {
	h := &MedicalRecordHandlers{Svc: services.MedicalRecords}
	guard := Guard(services.Auth, policyClinical)
	mux.Handle("POST /api/medical-records", guard(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/medical-records", guard(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/medical-records/{id}", guard(http.HandlerFunc(h.GetByID)))
	mux.Handle("PATCH /api/medical-records/{id}", guard(http.HandlerFunc(h.Update)))
}

func registerLeaveRequestRoutes(mux *http.ServeMux, services RouterServices) {
	h := &LeaveRequestHandlers{Svc: services.LeaveRequests}
	guard := Guard(services.Auth, policyStaffOnly)
	mux.Handle("POST /api/leave-requests", guard(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/leave-requests", guard(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/leave-requests/{id}", guard(http.HandlerFunc(h.GetByID)))
	mux.Handle("POST /api/leave-requests/{id}/decision", guard(http.HandlerFunc(h.Decide)))
	mux.Handle("POST /api/leave-requests/{id}/cancel", guard(http.HandlerFunc(h.Cancel)))
}

func registerInsuranceRoutes(mux *http.ServeMux, services RouterServices) {
	h := &InsuranceHandlers{Svc: services.Insurance}
	guard := Guard(services.Auth, policyFrontDesk)
	mux.Handle("POST /api/insurance", guard(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/insurance", guard(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/insurance/{id}", guard(http.HandlerFunc(h.GetByID)))
	mux.Handle("POST /api/insurance/{id}/verify", guard(http.HandlerFunc(h.Verify)))
	mux.Handle("POST /api/insurance/{id}/unverify", guard(http.HandlerFunc(h.Unverify)))
}

func registerStaffRoutes(mux *http.ServeMux, services RouterServices) {
	h := &StaffHandlers{Svc: services.Staff}
	guard := Guard(services.Auth, policyAdmin)
	mux.Handle("POST /api/staff", guard(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/staff", guard(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/staff/{id}", guard(http.HandlerFunc(h.GetByID)))
	mux.Handle("PUT /api/staff/{id}/role", guard(http.HandlerFunc(h.SetRole)))
}
