// Package httpx provides the HTTP surface of the health-center admin API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/medflow/medflow/internal/domain/model"
	"github.com/medflow/medflow/internal/service"
)

// AppointmentHandlers provides HTTP handlers for appointment scheduling.
type AppointmentHandlers struct {
	Svc *service.AppointmentService
}

// Create handles HTTP requests to schedule a new appointment.
func (h *AppointmentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req *model.CreateAppointmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req == nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: errors.New("request body is required")})
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		return
	}

	appt, err := h.Svc.Create(r.Context(), principal, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, appt)
}

// List handles HTTP requests to list appointments with filters.
func (h *AppointmentHandlers) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	opts := model.AppointmentsListOptions{
		PatientID: queryString(r, "patient_id"),
		DoctorID:  queryString(r, "doctor_id"),
		From:      queryTime(r, "from"),
		To:        queryTime(r, "to"),
		Sort:      r.URL.Query().Get("sort"),
		Dir:       r.URL.Query().Get("dir"),
	}
	opts.Limit, opts.Offset = ParseLimitOffset(r)
	if raw := queryString(r, "status"); raw != nil {
		status, valid := model.ParseAppointmentStatus(*raw)
		if !valid {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: errors.New("unknown appointment status")})
			return
		}
		opts.Status = &status
	}

	appts, err := h.Svc.List(r.Context(), principal, opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, appts)
}

// GetByID handles HTTP requests to fetch a single appointment.
func (h *AppointmentHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	appt, err := h.Svc.GetByID(r.Context(), principal, r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, appt)
}

// Update handles HTTP requests to modify an appointment.
func (h *AppointmentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req *model.UpdateAppointmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req == nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: errors.New("request body is required")})
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		return
	}

	appt, err := h.Svc.Update(r.Context(), principal, r.PathValue("id"), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, appt)
}

// writeUnauthenticated reports a missing principal. Reaching it means a route
// was registered without a guard.
func writeUnauthenticated(w http.ResponseWriter) {
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}
