package handler

import (
	"errors"
	"net/http"
	"time"

	clientsdomain "studio-backoffice-go/internal/domain/clients"
	teamdomain "studio-backoffice-go/internal/domain/team"

	"github.com/shopspring/decimal"
)

type createClientRequest struct {
	Name                   string           `json:"name" validate:"required"`
	ContactPerson          string           `json:"contactPerson" validate:"required"`
	Phone                  *string          `json:"phone"`
	Country                string           `json:"country" validate:"required"`
	CountryCode            string           `json:"countryCode" validate:"required"`
	ContractType           string           `json:"contractType" validate:"required,oneof=monthly one-time"`
	ProjectStatus          string           `json:"projectStatus" validate:"required,oneof='Planning' 'In Progress' 'Testing' 'Review' 'Completed' 'Paused'"`
	ContractStartDate      string           `json:"contractStartDate" validate:"required"`
	ExpectedCompletionDate string           `json:"expectedCompletionDate" validate:"required"`
	TotalProjectFee        decimal.Decimal  `json:"totalProjectFee"`
	TotalProjectFeeUSD     *decimal.Decimal `json:"totalProjectFeeUSD"`
	FeeCurrency            string           `json:"feeCurrency"`
	AmountPaid             *decimal.Decimal `json:"amountPaid"`
	AmountPaidUSD          *decimal.Decimal `json:"amountPaidUSD"`
	TotalImagesToMake      int              `json:"totalImagesToMake" validate:"min=0"`
	ImagesMade             int              `json:"imagesMade" validate:"min=0"`
	TotalJewelryArticles   int              `json:"totalJewelryArticles" validate:"min=0"`
	JewelryArticlesMade    int              `json:"jewelryArticlesMade" validate:"min=0"`
	LogoURL                *string          `json:"logoUrl"`
}

type updateClientRequest struct {
	Name                   *string          `json:"name"`
	ContactPerson          *string          `json:"contactPerson"`
	Phone                  *string          `json:"phone"`
	Country                *string          `json:"country"`
	CountryCode            *string          `json:"countryCode"`
	ContractType           *string          `json:"contractType" validate:"omitempty,oneof=monthly one-time"`
	ProjectStatus          *string          `json:"projectStatus" validate:"omitempty,oneof='Planning' 'In Progress' 'Testing' 'Review' 'Completed' 'Paused'"`
	ContractStartDate      *string          `json:"contractStartDate"`
	ExpectedCompletionDate *string          `json:"expectedCompletionDate"`
	TotalProjectFee        *decimal.Decimal `json:"totalProjectFee"`
	TotalProjectFeeUSD     *decimal.Decimal `json:"totalProjectFeeUSD"`
	FeeCurrency            *string          `json:"feeCurrency"`
	AmountPaid             *decimal.Decimal `json:"amountPaid"`
	AmountPaidUSD          *decimal.Decimal `json:"amountPaidUSD"`
	TotalImagesToMake      *int             `json:"totalImagesToMake" validate:"omitempty,min=0"`
	ImagesMade             *int             `json:"imagesMade" validate:"omitempty,min=0"`
	TotalJewelryArticles   *int             `json:"totalJewelryArticles" validate:"omitempty,min=0"`
	JewelryArticlesMade    *int             `json:"jewelryArticlesMade" validate:"omitempty,min=0"`
	LogoURL                *string          `json:"logoUrl"`
}

type assignTeamMemberRequest struct {
	TeamMemberID int64 `json:"teamMemberId" validate:"required,min=1"`
}

type createActivityRequest struct {
	ClientID    int64  `json:"clientId" validate:"required,min=1"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type clientResponse struct {
	ID                     int64                `json:"id"`
	Name                   string               `json:"name"`
	ContactPerson          string               `json:"contactPerson"`
	Phone                  *string              `json:"phone"`
	Country                string               `json:"country"`
	CountryCode            string               `json:"countryCode"`
	ContractType           string               `json:"contractType"`
	ProjectStatus          string               `json:"projectStatus"`
	ContractStartDate      time.Time            `json:"contractStartDate"`
	ExpectedCompletionDate time.Time            `json:"expectedCompletionDate"`
	TotalProjectFee        string               `json:"totalProjectFee"`
	TotalProjectFeeUSD     string               `json:"totalProjectFeeUSD"`
	FeeCurrency            string               `json:"feeCurrency"`
	AmountPaid             string               `json:"amountPaid"`
	AmountPaidUSD          string               `json:"amountPaidUSD"`
	TotalImagesToMake      int                  `json:"totalImagesToMake"`
	ImagesMade             int                  `json:"imagesMade"`
	TotalJewelryArticles   int                  `json:"totalJewelryArticles"`
	JewelryArticlesMade    int                  `json:"jewelryArticlesMade"`
	LogoURL                *string              `json:"logoUrl"`
	LastActivity           time.Time            `json:"lastActivity"`
	CreatedAt              time.Time            `json:"createdAt"`
	UpdatedAt              time.Time            `json:"updatedAt"`
	AssignedTeam           []assignmentResponse `json:"assignedTeam"`
}

type assignmentResponse struct {
	TeamMember teamMemberResponse `json:"teamMember"`
	AssignedAt time.Time          `json:"assignedAt"`
}

type activityResponse struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"clientId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type activityFeedResponse struct {
	activityResponse
	ClientName string `json:"clientName"`
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	list, err := h.Clients.List(r.Context())
	if err != nil {
		h.log.InternalError("clients.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]clientResponse, 0, len(list))
	for _, client := range list {
		response = append(response, toClientResponse(client))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	client, err := h.Clients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.log.InternalError("clients.get: get failed", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(*client))
}

func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	input, err := toCreateClientInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	client, err := h.Clients.Create(r.Context(), *input)
	if err != nil {
		h.log.InternalError("clients.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toClientResponse(*client))
}

func (h *Handlers) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	var req updateClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	input, err := toUpdateClientInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	client, err := h.Clients.Update(r.Context(), id, *input)
	if err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.log.InternalError("clients.update: update failed", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(*client))
}

func (h *Handlers) ReplaceClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	input, err := toCreateClientInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	client, err := h.Clients.Replace(r.Context(), id, *input)
	if err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.log.InternalError("clients.replace: replace failed", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(*client))
}

func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	if err := h.Clients.Delete(r.Context(), id); err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.log.InternalError("clients.delete: delete failed", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AssignTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	var req assignTeamMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if _, err := h.Team.GetByID(r.Context(), req.TeamMemberID); err != nil {
		if errors.Is(err, teamdomain.ErrTeamMemberNotFound) {
			writeError(w, http.StatusNotFound, "team_member_not_found", "team member not found")
			return
		}
		h.log.InternalError("clients.assign: get team member failed", err, "team_member_id", req.TeamMemberID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if err := h.Clients.AssignTeamMember(r.Context(), id, req.TeamMemberID); err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.log.InternalError("clients.assign: assign failed", err, "client_id", id, "team_member_id", req.TeamMemberID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	client, err := h.Clients.GetByID(r.Context(), id)
	if err != nil {
		h.log.InternalError("clients.assign: reload failed", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(*client))
}

func (h *Handlers) ListClientActivities(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	activities, err := h.Clients.ListActivities(r.Context(), id)
	if err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.log.InternalError("clients.activities: list failed", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]activityResponse, 0, len(activities))
	for _, activity := range activities {
		response = append(response, toActivityResponse(activity))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) ListRecentActivities(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}

	activities, err := h.Clients.ListRecentActivities(r.Context(), limit)
	if err != nil {
		h.log.InternalError("activities.recent: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]activityFeedResponse, 0, len(activities))
	for _, activity := range activities {
		response = append(response, activityFeedResponse{
			activityResponse: toActivityResponse(activity.Activity),
			ClientName:       activity.ClientName,
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	activity, err := h.Clients.CreateActivity(r.Context(), clientsdomain.CreateActivityInput{
		ClientID:    req.ClientID,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.log.InternalError("activities.create: create failed", err, "client_id", req.ClientID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toActivityResponse(*activity))
}

func toCreateClientInput(req createClientRequest) (*clientsdomain.CreateClientInput, error) {
	startDate, err := parseDateRequired(req.ContractStartDate)
	if err != nil {
		return nil, errors.New("invalid contractStartDate")
	}
	completionDate, err := parseDateRequired(req.ExpectedCompletionDate)
	if err != nil {
		return nil, errors.New("invalid expectedCompletionDate")
	}
	if req.TotalProjectFee.IsNegative() {
		return nil, errors.New("totalProjectFee must not be negative")
	}
	if req.AmountPaid != nil && req.AmountPaid.IsNegative() {
		return nil, errors.New("amountPaid must not be negative")
	}

	return &clientsdomain.CreateClientInput{
		Name:                   req.Name,
		ContactPerson:          req.ContactPerson,
		Phone:                  req.Phone,
		Country:                req.Country,
		CountryCode:            req.CountryCode,
		ContractType:           clientsdomain.ContractType(req.ContractType),
		ProjectStatus:          clientsdomain.ProjectStatus(req.ProjectStatus),
		ContractStartDate:      startDate,
		ExpectedCompletionDate: completionDate,
		TotalProjectFee:        req.TotalProjectFee,
		TotalProjectFeeUSD:     req.TotalProjectFeeUSD,
		FeeCurrency:            req.FeeCurrency,
		AmountPaid:             req.AmountPaid,
		AmountPaidUSD:          req.AmountPaidUSD,
		TotalImagesToMake:      req.TotalImagesToMake,
		ImagesMade:             req.ImagesMade,
		TotalJewelryArticles:   req.TotalJewelryArticles,
		JewelryArticlesMade:    req.JewelryArticlesMade,
		LogoURL:                req.LogoURL,
	}, nil
}

func toUpdateClientInput(req updateClientRequest) (*clientsdomain.UpdateClientInput, error) {
	input := clientsdomain.UpdateClientInput{
		Name:                 req.Name,
		ContactPerson:        req.ContactPerson,
		Phone:                req.Phone,
		Country:              req.Country,
		CountryCode:          req.CountryCode,
		TotalProjectFee:      req.TotalProjectFee,
		TotalProjectFeeUSD:   req.TotalProjectFeeUSD,
		FeeCurrency:          req.FeeCurrency,
		AmountPaid:           req.AmountPaid,
		AmountPaidUSD:        req.AmountPaidUSD,
		TotalImagesToMake:    req.TotalImagesToMake,
		ImagesMade:           req.ImagesMade,
		TotalJewelryArticles: req.TotalJewelryArticles,
		JewelryArticlesMade:  req.JewelryArticlesMade,
		LogoURL:              req.LogoURL,
	}

	if req.ContractType != nil {
		contractType := clientsdomain.ContractType(*req.ContractType)
		input.ContractType = &contractType
	}
	if req.ProjectStatus != nil {
		status := clientsdomain.ProjectStatus(*req.ProjectStatus)
		input.ProjectStatus = &status
	}
	if req.ContractStartDate != nil {
		parsed, err := parseDateRequired(*req.ContractStartDate)
		if err != nil {
			return nil, errors.New("invalid contractStartDate")
		}
		input.ContractStartDate = &parsed
	}
	if req.ExpectedCompletionDate != nil {
		parsed, err := parseDateRequired(*req.ExpectedCompletionDate)
		if err != nil {
			return nil, errors.New("invalid expectedCompletionDate")
		}
		input.ExpectedCompletionDate = &parsed
	}
	if req.TotalProjectFee != nil && req.TotalProjectFee.IsNegative() {
		return nil, errors.New("totalProjectFee must not be negative")
	}
	if req.AmountPaid != nil && req.AmountPaid.IsNegative() {
		return nil, errors.New("amountPaid must not be negative")
	}

	return &input, nil
}

func toClientResponse(client clientsdomain.Client) clientResponse {
	assignments := make([]assignmentResponse, 0, len(client.Assignments))
	for _, assignment := range client.Assignments {
		assignments = append(assignments, assignmentResponse{
			TeamMember: toTeamMemberResponse(assignment.TeamMember),
			AssignedAt: assignment.AssignedAt,
		})
	}

	return clientResponse{
		ID:                     client.ID,
		Name:                   client.Name,
		ContactPerson:          client.ContactPerson,
		Phone:                  client.Phone,
		Country:                client.Country,
		CountryCode:            client.CountryCode,
		ContractType:           string(client.ContractType),
		ProjectStatus:          string(client.ProjectStatus),
		ContractStartDate:      client.ContractStartDate,
		ExpectedCompletionDate: client.ExpectedCompletionDate,
		TotalProjectFee:        client.TotalProjectFee.StringFixed(2),
		TotalProjectFeeUSD:     client.TotalProjectFeeUSD.StringFixed(2),
		FeeCurrency:            client.FeeCurrency,
		AmountPaid:             client.AmountPaid.StringFixed(2),
		AmountPaidUSD:          client.AmountPaidUSD.StringFixed(2),
		TotalImagesToMake:      client.TotalImagesToMake,
		ImagesMade:             client.ImagesMade,
		TotalJewelryArticles:   client.TotalJewelryArticles,
		JewelryArticlesMade:    client.JewelryArticlesMade,
		LogoURL:                client.LogoURL,
		LastActivity:           client.LastActivity,
		CreatedAt:              client.CreatedAt,
		UpdatedAt:              client.UpdatedAt,
		AssignedTeam:           assignments,
	}
}

func toActivityResponse(activity clientsdomain.Activity) activityResponse {
	return activityResponse{
		ID:          activity.ID,
		ClientID:    activity.ClientID,
		Type:        activity.Type,
		Description: activity.Description,
		CreatedAt:   activity.CreatedAt,
	}
}
