package handler

import (
	"net/http"
	"time"

	dashboarddomain "studio-backoffice-go/internal/domain/dashboard"
)

type metricsResponse struct {
	TotalClients        int    `json:"totalClients"`
	ActiveProjects      int    `json:"activeProjects"`
	MonthlyRevenue      string `json:"monthlyRevenue"`
	CurrentMonthRevenue string `json:"currentMonthRevenue"`
	TeamUtilization     int    `json:"teamUtilization"`
}

type ledgerEntryResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	AmountUSD       string    `json:"amountUSD"`
	Currency        string    `json:"currency"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	ClientID        *int64    `json:"clientId"`
	IsClientPayment bool      `json:"isClientPayment"`
}

type financialSummaryResponse struct {
	TotalIncoming  string `json:"totalIncoming"`
	TotalOutgoing  string `json:"totalOutgoing"`
	NetProfit      string `json:"netProfit"`
	PendingRevenue string `json:"pendingRevenue"`
	TeamPayments   string `json:"teamPayments"`
	TotalExpenses  string `json:"totalExpenses"`
	GrowthPercent  string `json:"growthPercent"`
}

func (h *Handlers) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Dashboard.Metrics(r.Context())
	if err != nil {
		h.log.InternalError("dashboard.metrics: compute failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, metricsResponse{
		TotalClients:        metrics.TotalClients,
		ActiveProjects:      metrics.ActiveProjects,
		MonthlyRevenue:      metrics.MonthlyRevenue.StringFixed(2),
		CurrentMonthRevenue: metrics.CurrentMonthRevenue.StringFixed(2),
		TeamUtilization:     metrics.TeamUtilization,
	})
}

func (h *Handlers) DashboardProgress(w http.ResponseWriter, r *http.Request) {
	report, err := h.Dashboard.ActiveProgress(r.Context())
	if err != nil {
		h.log.InternalError("dashboard.progress: compute failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handlers) DashboardRecentTransactions(w http.ResponseWriter, r *http.Request) {
	windowDays, err := parseIntParam(r.URL.Query().Get("days"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid days")
		return
	}

	entries, err := h.Dashboard.RecentTransactions(r.Context(), windowDays)
	if err != nil {
		h.log.InternalError("dashboard.recent: compute failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]ledgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toLedgerEntryResponse(entry))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) FinancialSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Dashboard.FinancialSummary(r.Context())
	if err != nil {
		h.log.InternalError("dashboard.summary: compute failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, financialSummaryResponse{
		TotalIncoming:  summary.TotalIncoming.StringFixed(2),
		TotalOutgoing:  summary.TotalOutgoing.StringFixed(2),
		NetProfit:      summary.NetProfit.StringFixed(2),
		PendingRevenue: summary.PendingRevenue.StringFixed(2),
		TeamPayments:   summary.TeamPayments.StringFixed(2),
		TotalExpenses:  summary.TotalExpenses.StringFixed(2),
		GrowthPercent:  summary.GrowthPercent.StringFixed(1),
	})
}

func toLedgerEntryResponse(entry dashboarddomain.LedgerEntry) ledgerEntryResponse {
	return ledgerEntryResponse{
		ID:              entry.ID,
		Type:            string(entry.Type),
		AmountUSD:       entry.AmountUSD.StringFixed(2),
		Currency:        entry.Currency,
		Description:     entry.Description,
		Date:            entry.Date,
		ClientID:        entry.ClientID,
		IsClientPayment: entry.IsClientPayment,
	}
}
