package handler

import (
	"errors"
	"net/http"
	"time"

	samplesdomain "studio-backoffice-go/internal/domain/samples"
)

type createSampleRequestRequest struct {
	CompanyName string  `json:"companyName" validate:"required"`
	Country     string  `json:"country" validate:"required"`
	RequestDate string  `json:"requestDate" validate:"required"`
	Status      string  `json:"status" validate:"omitempty,oneof='in processing' 'delivered' 'rejected'"`
	Notes       *string `json:"notes"`
}

type updateSampleRequestRequest struct {
	CompanyName *string `json:"companyName"`
	Country     *string `json:"country"`
	RequestDate *string `json:"requestDate"`
	Status      *string `json:"status" validate:"omitempty,oneof='in processing' 'delivered' 'rejected'"`
	Notes       *string `json:"notes"`
}

type sampleRequestResponse struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"companyName"`
	Country     string    `json:"country"`
	RequestDate time.Time `json:"requestDate"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (h *Handlers) ListSampleRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Samples.List(r.Context())
	if err != nil {
		h.log.InternalError("samples.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]sampleRequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, toSampleRequestResponse(request))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateSampleRequest(w http.ResponseWriter, r *http.Request) {
	var req createSampleRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	requestDate, err := parseDateRequired(req.RequestDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid requestDate")
		return
	}

	request, err := h.Samples.Create(r.Context(), samplesdomain.CreateSampleRequestInput{
		CompanyName: req.CompanyName,
		Country:     req.Country,
		RequestDate: requestDate,
		Status:      samplesdomain.Status(req.Status),
		Notes:       req.Notes,
	})
	if err != nil {
		h.log.InternalError("samples.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toSampleRequestResponse(*request))
}

func (h *Handlers) UpdateSampleRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid sample request id")
		return
	}

	var req updateSampleRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	input := samplesdomain.UpdateSampleRequestInput{
		CompanyName: req.CompanyName,
		Country:     req.Country,
		Notes:       req.Notes,
	}
	if req.RequestDate != nil {
		parsed, err := parseDateRequired(*req.RequestDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid requestDate")
			return
		}
		input.RequestDate = &parsed
	}
	if req.Status != nil {
		status := samplesdomain.Status(*req.Status)
		input.Status = &status
	}

	request, err := h.Samples.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, samplesdomain.ErrSampleRequestNotFound) {
			writeError(w, http.StatusNotFound, "sample_request_not_found", "sample request not found")
			return
		}
		h.log.InternalError("samples.update: update failed", err, "sample_request_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSampleRequestResponse(*request))
}

func (h *Handlers) DeleteSampleRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid sample request id")
		return
	}

	if err := h.Samples.Delete(r.Context(), id); err != nil {
		if errors.Is(err, samplesdomain.ErrSampleRequestNotFound) {
			writeError(w, http.StatusNotFound, "sample_request_not_found", "sample request not found")
			return
		}
		h.log.InternalError("samples.delete: delete failed", err, "sample_request_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toSampleRequestResponse(request samplesdomain.SampleRequest) sampleRequestResponse {
	return sampleRequestResponse{
		ID:          request.ID,
		CompanyName: request.CompanyName,
		Country:     request.Country,
		RequestDate: request.RequestDate,
		Status:      string(request.Status),
		Notes:       request.Notes,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
