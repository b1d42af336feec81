package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	trackingdomain "studio-backoffice-go/internal/domain/tracking"

	"github.com/go-chi/chi/v5"
)

type checkInRequest struct {
	ClientID int64   `json:"clientId" validate:"required,min=1"`
	Duration *int    `json:"duration" validate:"omitempty,min=0"`
	Notes    *string `json:"notes"`
}

type setImageCountRequest struct {
	Count int `json:"count" validate:"min=0"`
}

type setImageCountForDateRequest struct {
	Date  string `json:"date" validate:"required"`
	Count int    `json:"count" validate:"min=0"`
}

type workSessionResponse struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"clientId"`
	WorkDate  string    `json:"workDate"`
	Duration  *int      `json:"duration"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type imageCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func (h *Handlers) ListTodayWorkSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Tracking.TodaySessions(r.Context())
	if err != nil {
		h.log.InternalError("tracking.sessions_today: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]workSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, toWorkSessionResponse(session))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	session, err := h.Tracking.CheckIn(r.Context(), trackingdomain.CheckInInput{
		ClientID: req.ClientID,
		Duration: req.Duration,
		Notes:    req.Notes,
	})
	if err != nil {
		h.log.InternalError("tracking.check_in: check in failed", err, "client_id", req.ClientID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toWorkSessionResponse(*session))
}

func (h *Handlers) CheckOut(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseIDParam(r, "clientId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	if err := h.Tracking.CheckOut(r.Context(), clientID); err != nil {
		if errors.Is(err, trackingdomain.ErrWorkSessionNotFound) {
			writeError(w, http.StatusNotFound, "work_session_not_found", "work session not found")
			return
		}
		h.log.InternalError("tracking.check_out: check out failed", err, "client_id", clientID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetTodayImageCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Tracking.TodayImageCount(r.Context())
	if err != nil {
		h.log.InternalError("tracking.images_today: get failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, imageCountResponse{
		Date:  trackingdomain.DateOnly(time.Now()).Format("2006-01-02"),
		Count: count,
	})
}

func (h *Handlers) SetTodayImageCount(w http.ResponseWriter, r *http.Request) {
	var req setImageCountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	row, err := h.Tracking.SetTodayImageCount(r.Context(), req.Count)
	if err != nil {
		if errors.Is(err, trackingdomain.ErrInvalidCount) {
			writeError(w, http.StatusBadRequest, "invalid_request", "count must be non-negative")
			return
		}
		h.log.InternalError("tracking.set_images_today: upsert failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toImageCountResponse(*row))
}

func (h *Handlers) SetImageCountForDate(w http.ResponseWriter, r *http.Request) {
	var req setImageCountForDateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	row, err := h.Tracking.SetImageCountForDate(r.Context(), date, req.Count)
	if err != nil {
		if errors.Is(err, trackingdomain.ErrInvalidCount) {
			writeError(w, http.StatusBadRequest, "invalid_request", "count must be non-negative")
			return
		}
		h.log.InternalError("tracking.set_images_date: upsert failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toImageCountResponse(*row))
}

func (h *Handlers) ListMonthImageCounts(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2200 {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid year")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		return
	}

	counts, err := h.Tracking.MonthImageCounts(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, trackingdomain.ErrInvalidMonth) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
			return
		}
		h.log.InternalError("tracking.images_month: list failed", err, "year", year, "month", month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]imageCountResponse, 0, len(counts))
	for _, count := range counts {
		response = append(response, toImageCountResponse(count))
	}
	writeJSON(w, http.StatusOK, response)
}

func toWorkSessionResponse(session trackingdomain.WorkSession) workSessionResponse {
	return workSessionResponse{
		ID:        session.ID,
		ClientID:  session.ClientID,
		WorkDate:  session.WorkDate.Format("2006-01-02"),
		Duration:  session.Duration,
		Notes:     session.Notes,
		CreatedAt: session.CreatedAt,
	}
}

func toImageCountResponse(count trackingdomain.DailyImageCount) imageCountResponse {
	return imageCountResponse{
		Date:  count.Date.Format("2006-01-02"),
		Count: count.ImageCount,
	}
}
