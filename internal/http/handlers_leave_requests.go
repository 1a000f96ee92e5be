package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/medflow/medflow/internal/domain/model"
	"github.com/medflow/medflow/internal/service"
)

// LeaveRequestHandlers provides HTTP handlers for the staff leave workflow.
type LeaveRequestHandlers struct {
	Svc *service.LeaveRequestService
}

// Create handles HTTP requests to file a leave request.
func (h *LeaveRequestHandlers) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req *model.CreateLeaveRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	lr, err := h.Svc.Create(r.Context(), principal, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, lr)
}

// List handles HTTP requests to list leave requests with filters.
func (h *LeaveRequestHandlers) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	opts := model.LeaveRequestsListOptions{
		EmployeeID: queryString(r, "employee_id"),
	}
	opts.Limit, opts.Offset = ParseLimitOffset(r)
	if raw := queryString(r, "status"); raw != nil {
		status := model.LeaveStatus(strings.ToLower(*raw))
		if !status.Valid() {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: errors.New("unknown leave status")})
			return
		}
		opts.Status = &status
	}
	if raw := queryString(r, "type"); raw != nil {
		leaveType, valid := model.ParseLeaveType(*raw)
		if !valid {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: errors.New("unknown leave type")})
			return
		}
		opts.Type = &leaveType
	}

	requests, err := h.Svc.List(r.Context(), principal, opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, requests)
}

// GetByID handles HTTP requests to fetch a single leave request.
func (h *LeaveRequestHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	lr, err := h.Svc.GetByID(r.Context(), principal, r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, lr)
}

// Decide handles HTTP requests to approve or reject a pending request.
func (h *LeaveRequestHandlers) Decide(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var decision model.LeaveDecision
	if !DecodeJSON(w, r, &decision) {
		return
	}

	lr, err := h.Svc.Decide(r.Context(), principal, r.PathValue("id"), decision)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, lr)
}

// Cancel handles HTTP requests to withdraw the caller's own pending request.
func (h *LeaveRequestHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	lr, err := h.Svc.Cancel(r.Context(), principal, r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, lr)
}
