package dashboard

import (
	"time"

	"studio-backoffice-go/internal/domain/finance"

	"github.com/shopspring/decimal"
)

// Metrics is the headline dashboard view, recomputed on every request.
//
// MonthlyRevenue keeps the historical meaning of the metric: the all-time sum
// of USD-normalized client payments, despite the name. CurrentMonthRevenue is
// the honestly time-windowed figure.
type Metrics struct {
	TotalClients        int             `json:"totalClients"`
	ActiveProjects      int             `json:"activeProjects"`
	MonthlyRevenue      decimal.Decimal `json:"monthlyRevenue"`
	CurrentMonthRevenue decimal.Decimal `json:"currentMonthRevenue"`
	TeamUtilization     int             `json:"teamUtilization"`
}

// ProgressReport summarizes produced versus requested work across the active
// client set.
type ProgressReport struct {
	Percent           int `json:"percent"`
	ImagesMade        int `json:"imagesMade"`
	ImagesRequested   int `json:"imagesRequested"`
	JewelryMade       int `json:"jewelryMade"`
	JewelryRequested  int `json:"jewelryRequested"`
	ActiveClientCount int `json:"activeClientCount"`
}

// LedgerEntry is one row of the merged recent-money feed. Explicit
// transactions keep their numeric id; client-payment pseudo-entries get a
// synthetic "client-<id>" id and are flagged.
type LedgerEntry struct {
	ID              string                  `json:"id"`
	Type            finance.TransactionType `json:"type"`
	AmountUSD       decimal.Decimal         `json:"amountUSD"`
	Currency        string                  `json:"currency"`
	Description     string                  `json:"description"`
	Date            time.Time               `json:"date"`
	ClientID        *int64                  `json:"clientId"`
	IsClientPayment bool                    `json:"isClientPayment"`
}

// FinancialSummary aggregates both money streams: denormalized client
// payments and the explicit transaction ledger.
type FinancialSummary struct {
	TotalIncoming  decimal.Decimal `json:"totalIncoming"`
	TotalOutgoing  decimal.Decimal `json:"totalOutgoing"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	PendingRevenue decimal.Decimal `json:"pendingRevenue"`
	TeamPayments   decimal.Decimal `json:"teamPayments"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	GrowthPercent  decimal.Decimal `json:"growthPercent"`
}

// Config mirrors the dashboard section of the app configuration.
type Config struct {
	ActiveStatuses   []string
	RecentWindowDays int
	RecentLimit      int
}
