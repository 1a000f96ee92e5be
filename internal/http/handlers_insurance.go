package httpx

import (
	"errors"
	"net/http"

	"github.com/medflow/medflow/internal/domain/model"
	"github.com/medflow/medflow/internal/service"
)

// InsuranceHandlers provides HTTP handlers for policy registration and verification.
type InsuranceHandlers struct {
	Svc *service.InsuranceService
}

// Create handles HTTP requests to register a new policy.
func (h *InsuranceHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateInsurancePolicyRequest
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

	policy, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, policy)
}

// List handles HTTP requests to list policies with filters.
func (h *InsuranceHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts := model.InsuranceListOptions{
		PatientID: queryString(r, "patient_id"),
		Verified:  queryBool(r, "verified"),
	}
	opts.Limit, opts.Offset = ParseLimitOffset(r)
	if days := parseIntQuery(r, "expiring_within_days", -1); days >= 0 {
		opts.ExpiringWithinDays = &days
	}

	policies, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, policies)
}

// GetByID handles HTTP requests to fetch a single policy.
func (h *InsuranceHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	policy, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, policy)
}

// Verify handles HTTP requests to mark a policy verified by the caller.
func (h *InsuranceHandlers) Verify(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	policy, err := h.Svc.Verify(r.Context(), principal, r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, policy)
}

// Unverify handles HTTP requests to clear a prior verification.
func (h *InsuranceHandlers) Unverify(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	policy, err := h.Svc.Unverify(r.Context(), principal, r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, policy)
}
