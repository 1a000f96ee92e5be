package model

// DashboardStats summarizes the health center's current workload for the
// landing page. Each counter is computed by an independent query.
type DashboardStats struct {
	AppointmentsToday    int `json:"appointments_today"`
	AppointmentsUpcoming int `json:"appointments_upcoming"`
	PendingLeaveRequests int `json:"pending_leave_requests"`
	ActivePatients       int `json:"active_patients"`
	UnverifiedInsurance  int `json:"unverified_insurance"`
}
