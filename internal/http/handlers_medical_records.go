package httpx

import (
	"errors"
	"net/http"

	"github.com/medflow/medflow/internal/domain/model"
	"github.com/medflow/medflow/internal/service"
)

// MedicalRecordHandlers provides HTTP handlers for clinical records.
type MedicalRecordHandlers struct {
	Svc *service.MedicalRecordService
}

// Create handles HTTP requests to author a new medical record.
func (h *MedicalRecordHandlers) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req *model.CreateMedicalRecordRequest
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

	rec, err := h.Svc.Create(r.Context(), principal, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, rec)
}

// List handles HTTP requests to list medical records with filters.
func (h *MedicalRecordHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts := model.MedicalRecordsListOptions{
		PatientID: queryString(r, "patient_id"),
		DoctorID:  queryString(r, "doctor_id"),
		Q:         queryString(r, "q"),
	}
	opts.Limit, opts.Offset = ParseLimitOffset(r)

	recs, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, recs)
}

// GetByID handles HTTP requests to fetch a single medical record.
func (h *MedicalRecordHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}

// Update handles HTTP requests to edit a medical record.
func (h *MedicalRecordHandlers) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req *model.UpdateMedicalRecordRequest
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

	rec, err := h.Svc.Update(r.Context(), principal, r.PathValue("id"), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}
