package handler

import (
	"errors"
	"net/http"
	"time"

	teamdomain "studio-backoffice-go/internal/domain/team"
)

type createTeamMemberRequest struct {
	Name       string  `json:"name" validate:"required"`
	WhatsappNo string  `json:"whatsappNo" validate:"required"`
	Country    string  `json:"country" validate:"required"`
	Role       string  `json:"role" validate:"required,oneof=cofounder freelancer other"`
	Avatar     *string `json:"avatar"`
}

type teamMemberResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	WhatsappNo string    `json:"whatsappNo"`
	Country    string    `json:"country"`
	Role       string    `json:"role"`
	Avatar     *string   `json:"avatar"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (h *Handlers) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Team.ListActive(r.Context())
	if err != nil {
		h.log.InternalError("team.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]teamMemberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, toTeamMemberResponse(member))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req createTeamMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	member, err := h.Team.Create(r.Context(), teamdomain.CreateTeamMemberInput{
		Name:       req.Name,
		WhatsappNo: req.WhatsappNo,
		Country:    req.Country,
		Role:       teamdomain.Role(req.Role),
		Avatar:     req.Avatar,
	})
	if err != nil {
		if errors.Is(err, teamdomain.ErrInvalidRole) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid role")
			return
		}
		h.log.InternalError("team.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toTeamMemberResponse(*member))
}

func (h *Handlers) DeactivateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid team member id")
		return
	}

	if err := h.Team.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, teamdomain.ErrTeamMemberNotFound) {
			writeError(w, http.StatusNotFound, "team_member_not_found", "team member not found")
			return
		}
		h.log.InternalError("team.deactivate: deactivate failed", err, "team_member_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTeamMemberResponse(member teamdomain.TeamMember) teamMemberResponse {
	return teamMemberResponse{
		ID:         member.ID,
		Name:       member.Name,
		WhatsappNo: member.WhatsappNo,
		Country:    member.Country,
		Role:       string(member.Role),
		Avatar:     member.Avatar,
		IsActive:   member.IsActive,
		CreatedAt:  member.CreatedAt,
	}
}
