package handler

import (
	"errors"
	"net/http"
	"time"

	financedomain "studio-backoffice-go/internal/domain/finance"

	"github.com/shopspring/decimal"
)

type createTransactionRequest struct {
	ClientID     *int64           `json:"clientId" validate:"omitempty,min=1"`
	TeamMemberID *int64           `json:"teamMemberId" validate:"omitempty,min=1"`
	Amount       decimal.Decimal  `json:"amount"`
	AmountUSD    *decimal.Decimal `json:"amountUSD"`
	Currency     string           `json:"currency"`
	Type         string           `json:"type" validate:"required,oneof=incoming payment_to_team expense manual_income manual_expense"`
	Category     *string          `json:"category"`
	Description  string           `json:"description" validate:"required"`
	Date         *string          `json:"date"`
}

type updateTransactionRequest struct {
	TeamMemberID *int64  `json:"teamMemberId" validate:"omitempty,min=1"`
	Category     *string `json:"category"`
}

type transactionResponse struct {
	ID           int64     `json:"id"`
	ClientID     *int64    `json:"clientId"`
	TeamMemberID *int64    `json:"teamMemberId"`
	Amount       string    `json:"amount"`
	AmountUSD    string    `json:"amountUSD"`
	Currency     string    `json:"currency"`
	Type         string    `json:"type"`
	Category     *string   `json:"category"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

type createMarketingTransactionRequest struct {
	Name       string           `json:"name" validate:"required"`
	Amount     decimal.Decimal  `json:"amount"`
	AmountUSD  *decimal.Decimal `json:"amountUSD"`
	Currency   string           `json:"currency"`
	Date       string           `json:"date" validate:"required"`
	Logo       *string          `json:"logo"`
	Period     string           `json:"period" validate:"omitempty,oneof=one-time monthly"`
	ReceivedBy *string          `json:"receivedBy"`
	Note       *string          `json:"note"`
}

type updateMarketingTransactionRequest struct {
	Name       *string          `json:"name"`
	Amount     *decimal.Decimal `json:"amount"`
	AmountUSD  *decimal.Decimal `json:"amountUSD"`
	Currency   *string          `json:"currency"`
	Date       *string          `json:"date"`
	Logo       *string          `json:"logo"`
	Period     *string          `json:"period" validate:"omitempty,oneof=one-time monthly"`
	ReceivedBy *string          `json:"receivedBy"`
	Note       *string          `json:"note"`
}

type marketingTransactionResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Amount     string    `json:"amount"`
	AmountUSD  string    `json:"amountUSD"`
	Currency   string    `json:"currency"`
	Date       time.Time `json:"date"`
	Logo       *string   `json:"logo"`
	Period     string    `json:"period"`
	ReceivedBy *string   `json:"receivedBy"`
	Note       *string   `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Finance.ListTransactions(r.Context())
	if err != nil {
		h.log.InternalError("finance.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		response = append(response, toTransactionResponse(tx))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	if req.Amount.IsNegative() {
		writeError(w, http.StatusBadRequest, "invalid_request", "amount must not be negative")
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := parseDateRequired(*req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
			return
		}
		date = &parsed
	}

	tx, err := h.Finance.CreateTransaction(r.Context(), financedomain.CreateTransactionInput{
		ClientID:     req.ClientID,
		TeamMemberID: req.TeamMemberID,
		Amount:       req.Amount,
		AmountUSD:    req.AmountUSD,
		Currency:     req.Currency,
		Type:         financedomain.TransactionType(req.Type),
		Category:     req.Category,
		Description:  req.Description,
		Date:         date,
	})
	if err != nil {
		if errors.Is(err, financedomain.ErrInvalidTransactionType) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid transaction type")
			return
		}
		h.log.InternalError("finance.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(*tx))
}

func (h *Handlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid transaction id")
		return
	}

	var req updateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	tx, err := h.Finance.UpdateTransaction(r.Context(), id, financedomain.UpdateTransactionInput{
		TeamMemberID: req.TeamMemberID,
		Category:     req.Category,
	})
	if err != nil {
		if errors.Is(err, financedomain.ErrTransactionNotFound) {
			writeError(w, http.StatusNotFound, "transaction_not_found", "transaction not found")
			return
		}
		h.log.InternalError("finance.update: update failed", err, "transaction_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponse(*tx))
}

func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid transaction id")
		return
	}

	if err := h.Finance.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, financedomain.ErrTransactionNotFound) {
			writeError(w, http.StatusNotFound, "transaction_not_found", "transaction not found")
			return
		}
		h.log.InternalError("finance.delete: delete failed", err, "transaction_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListMarketingTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Finance.ListMarketingTransactions(r.Context())
	if err != nil {
		h.log.InternalError("marketing.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]marketingTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		response = append(response, toMarketingTransactionResponse(tx))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateMarketingTransaction(w http.ResponseWriter, r *http.Request) {
	var req createMarketingTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	if req.Amount.IsNegative() {
		writeError(w, http.StatusBadRequest, "invalid_request", "amount must not be negative")
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	period := financedomain.PeriodOneTime
	if req.Period != "" {
		period = financedomain.Period(req.Period)
	}

	tx, err := h.Finance.CreateMarketingTransaction(r.Context(), financedomain.CreateMarketingTransactionInput{
		Name:       req.Name,
		Amount:     req.Amount,
		AmountUSD:  req.AmountUSD,
		Currency:   req.Currency,
		Date:       date,
		Logo:       req.Logo,
		Period:     period,
		ReceivedBy: req.ReceivedBy,
		Note:       req.Note,
	})
	if err != nil {
		if errors.Is(err, financedomain.ErrInvalidPeriod) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid period")
			return
		}
		h.log.InternalError("marketing.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toMarketingTransactionResponse(*tx))
}

func (h *Handlers) UpdateMarketingTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid marketing transaction id")
		return
	}

	var req updateMarketingTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	input := financedomain.UpdateMarketingTransactionInput{
		Name:       req.Name,
		Amount:     req.Amount,
		AmountUSD:  req.AmountUSD,
		Currency:   req.Currency,
		Logo:       req.Logo,
		ReceivedBy: req.ReceivedBy,
		Note:       req.Note,
	}
	if req.Date != nil {
		parsed, err := parseDateRequired(*req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
			return
		}
		input.Date = &parsed
	}
	if req.Period != nil {
		period := financedomain.Period(*req.Period)
		input.Period = &period
	}

	tx, err := h.Finance.UpdateMarketingTransaction(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, financedomain.ErrMarketingTransactionNotFound) {
			writeError(w, http.StatusNotFound, "marketing_transaction_not_found", "marketing transaction not found")
			return
		}
		if errors.Is(err, financedomain.ErrInvalidPeriod) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid period")
			return
		}
		h.log.InternalError("marketing.update: update failed", err, "marketing_transaction_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMarketingTransactionResponse(*tx))
}

func (h *Handlers) DeleteMarketingTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid marketing transaction id")
		return
	}

	if err := h.Finance.DeleteMarketingTransaction(r.Context(), id); err != nil {
		if errors.Is(err, financedomain.ErrMarketingTransactionNotFound) {
			writeError(w, http.StatusNotFound, "marketing_transaction_not_found", "marketing transaction not found")
			return
		}
		h.log.InternalError("marketing.delete: delete failed", err, "marketing_transaction_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTransactionResponse(tx financedomain.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		ClientID:     tx.ClientID,
		TeamMemberID: tx.TeamMemberID,
		Amount:       tx.Amount.StringFixed(2),
		AmountUSD:    tx.AmountUSD.StringFixed(2),
		Currency:     tx.Currency,
		Type:         string(tx.Type),
		Category:     tx.Category,
		Description:  tx.Description,
		Date:         tx.Date,
		CreatedAt:    tx.CreatedAt,
	}
}

func toMarketingTransactionResponse(tx financedomain.MarketingTransaction) marketingTransactionResponse {
	return marketingTransactionResponse{
		ID:         tx.ID,
		Name:       tx.Name,
		Amount:     tx.Amount.StringFixed(2),
		AmountUSD:  tx.AmountUSD.StringFixed(2),
		Currency:   tx.Currency,
		Date:       tx.Date,
		Logo:       tx.Logo,
		Period:     string(tx.Period),
		ReceivedBy: tx.ReceivedBy,
		Note:       tx.Note,
		CreatedAt:  tx.CreatedAt,
	}
}
