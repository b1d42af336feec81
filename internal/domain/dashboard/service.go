package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"studio-backoffice-go/internal/domain/clients"
	"studio-backoffice-go/internal/domain/finance"

	"github.com/shopspring/decimal"
)

const (
	defaultRecentWindowDays = 30
	defaultRecentLimit      = 8
)

type Service struct {
	repo Repository
	cfg  Config
	now  func() time.Time
}

func NewService(repo Repository, cfg Config) *Service {
	if len(cfg.ActiveStatuses) == 0 {
		cfg.ActiveStatuses = []string{
			string(clients.StatusPlanning),
			string(clients.StatusInProgress),
			string(clients.StatusTesting),
		}
	}
	if cfg.RecentWindowDays <= 0 {
		cfg.RecentWindowDays = defaultRecentWindowDays
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = defaultRecentLimit
	}

	return &Service{repo: repo, cfg: cfg, now: time.Now}
}

func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	all, err := s.repo.ListClients(ctx)
	if err != nil {
		return Metrics{}, err
	}

	active := 0
	assigned := 0
	revenue := decimal.Zero
	for _, c := range all {
		if s.isActiveStatus(c.ProjectStatus) {
			active++
		}
		if len(c.Assignments) > 0 {
			assigned++
		}
		revenue = revenue.Add(c.AmountPaidUSD)
	}

	utilization := 0
	if len(all) > 0 {
		utilization = int(math.Round(100 * float64(assigned) / float64(len(all))))
	}

	monthRevenue, err := s.currentMonthRevenue(ctx)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		TotalClients:        len(all),
		ActiveProjects:      active,
		MonthlyRevenue:      revenue,
		CurrentMonthRevenue: monthRevenue,
		TeamUtilization:     utilization,
	}, nil
}

// ActiveProgress computes overall progress over the active client set.
func (s *Service) ActiveProgress(ctx context.Context) (ProgressReport, error) {
	all, err := s.repo.ListClients(ctx)
	if err != nil {
		return ProgressReport{}, err
	}

	active := make([]clients.Client, 0, len(all))
	for _, c := range all {
		if s.isActiveStatus(c.ProjectStatus) {
			active = append(active, c)
		}
	}

	report := ProgressReport{ActiveClientCount: len(active)}
	for _, c := range active {
		report.ImagesRequested += c.TotalImagesToMake
		report.ImagesMade += c.ImagesMade
		report.JewelryRequested += c.TotalJewelryArticles
		report.JewelryMade += c.JewelryArticlesMade
	}
	report.Percent = Progress(active)

	return report, nil
}

// Progress returns the combined completion percentage for a client set:
// round(100 * made / requested), 0 when nothing is requested.
func Progress(set []clients.Client) int {
	requested := 0
	made := 0
	for _, c := range set {
		requested += c.TotalImagesToMake + c.TotalJewelryArticles
		made += c.ImagesMade + c.JewelryArticlesMade
	}
	if requested == 0 {
		return 0
	}
	return int(math.Round(100 * float64(made) / float64(requested)))
}

// RecentTransactions merges the explicit ledger with client-payment
// pseudo-entries (one per client with a positive paid amount, dated by the
// client's creation), filters to the trailing window, sorts by date
// descending and caps the result. A client payment is never auto-written to
// the ledger; this merge is the only place the two streams meet.
func (s *Service) RecentTransactions(ctx context.Context, windowDays int) ([]LedgerEntry, error) {
	if windowDays <= 0 {
		windowDays = s.cfg.RecentWindowDays
	}

	all, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().UTC().AddDate(0, 0, -windowDays)
	entries := make([]LedgerEntry, 0, len(all)+len(txs))

	for _, c := range all {
		if !c.AmountPaid.IsPositive() || c.CreatedAt.Before(cutoff) {
			continue
		}
		clientID := c.ID
		entries = append(entries, LedgerEntry{
			ID:              fmt.Sprintf("client-%d", c.ID),
			Type:            finance.TypeIncoming,
			AmountUSD:       c.AmountPaidUSD,
			Currency:        c.FeeCurrency,
			Description:     "Payment from " + c.Name,
			Date:            c.CreatedAt,
			ClientID:        &clientID,
			IsClientPayment: true,
		})
	}

	for _, tx := range txs {
		if tx.Date.Before(cutoff) {
			continue
		}
		entries = append(entries, LedgerEntry{
			ID:          fmt.Sprintf("%d", tx.ID),
			Type:        tx.Type,
			AmountUSD:   tx.AmountUSD,
			Currency:    tx.Currency,
			Description: tx.Description,
			Date:        tx.Date,
			ClientID:    tx.ClientID,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	if len(entries) > s.cfg.RecentLimit {
		entries = entries[:s.cfg.RecentLimit]
	}

	return entries, nil
}

// FinancialSummary folds both money streams into the totals the finance view
// shows.
func (s *Service) FinancialSummary(ctx context.Context) (FinancialSummary, error) {
	all, err := s.repo.ListClients(ctx)
	if err != nil {
		return FinancialSummary{}, err
	}
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return FinancialSummary{}, err
	}

	clientIncome := decimal.Zero
	contractValue := decimal.Zero
	for _, c := range all {
		clientIncome = clientIncome.Add(c.AmountPaidUSD)
		contractValue = contractValue.Add(c.TotalProjectFeeUSD)
	}

	txIncome := decimal.Zero
	outgoing := decimal.Zero
	teamPayments := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range txs {
		category := ""
		if tx.Category != nil {
			category = *tx.Category
		}
		if tx.Type.Income() {
			txIncome = txIncome.Add(tx.AmountUSD)
		}
		if !tx.Type.Income() || category == "Expenses" {
			outgoing = outgoing.Add(tx.AmountUSD)
		}
		if category == "Salary" {
			teamPayments = teamPayments.Add(tx.AmountUSD)
		}
		if category == "Expenses" {
			expenses = expenses.Add(tx.AmountUSD)
		}
	}

	incoming := clientIncome.Add(txIncome)
	net := incoming.Sub(outgoing)

	growth := decimal.Zero
	if incoming.IsPositive() {
		growth = net.Div(incoming).Mul(decimal.NewFromInt(100)).Round(1)
	}

	return FinancialSummary{
		TotalIncoming:  incoming,
		TotalOutgoing:  outgoing,
		NetProfit:      net,
		PendingRevenue: contractValue.Sub(clientIncome),
		TeamPayments:   teamPayments,
		TotalExpenses:  expenses,
		GrowthPercent:  growth,
	}, nil
}

func (s *Service) currentMonthRevenue(ctx context.Context) (decimal.Decimal, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	total := decimal.Zero
	for _, tx := range txs {
		if !tx.Type.Income() {
			continue
		}
		if tx.Date.Before(monthStart) || !tx.Date.Before(monthStart.AddDate(0, 1, 0)) {
			continue
		}
		total = total.Add(tx.AmountUSD)
	}

	return total, nil
}

func (s *Service) isActiveStatus(status clients.ProjectStatus) bool {
	for _, active := range s.cfg.ActiveStatuses {
		if string(status) == active {
			return true
		}
	}
	return false
}
