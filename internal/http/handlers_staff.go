package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
	"github.com/medflow/medflow/internal/service"
)

// StaffHandlers provides HTTP handlers for profile administration. Routes are
// admin-only by guard policy.
type StaffHandlers struct {
	Svc *service.StaffService
}

// Create handles HTTP requests to register a profile for a provider subject.
func (h *StaffHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateProfileRequest
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

	profile, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, profile)
}

// List handles HTTP requests to list profiles with filters.
func (h *StaffHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ProfilesListOptions{
		Q: queryString(r, "q"),
	}
	opts.Limit, opts.Offset = ParseLimitOffset(r)
	if raw := queryString(r, "role"); raw != nil {
		role := domainauth.ParseRole(*raw)
		if !role.Known() {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: errors.New("unknown role")})
			return
		}
		opts.Role = &role
	}

	profiles, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profiles)
}

// GetByID handles HTTP requests to fetch a single profile.
func (h *StaffHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole handles HTTP requests to change a profile's role.
func (h *StaffHandlers) SetRole(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req setRoleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	profile, err := h.Svc.SetRole(r.Context(), principal, r.PathValue("id"), req.Role)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}
