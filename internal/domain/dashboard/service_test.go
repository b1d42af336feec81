package dashboard

import (
	"context"
	"testing"
	"time"

	"studio-backoffice-go/internal/domain/clients"
	"studio-backoffice-go/internal/domain/finance"

	"github.com/shopspring/decimal"
)

type fakeDashboardRepo struct {
	clients      []clients.Client
	transactions []finance.Transaction
}

func (r *fakeDashboardRepo) ListClients(ctx context.Context) ([]clients.Client, error) {
	return r.clients, nil
}

func (r *fakeDashboardRepo) ListTransactions(ctx context.Context) ([]finance.Transaction, error) {
	return r.transactions, nil
}

func fixedNow() time.Time {
	return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService(repo *fakeDashboardRepo) *Service {
	s := NewService(repo, Config{})
	s.now = fixedNow
	return s
}

func testClient(id int64, status clients.ProjectStatus, paidUSD int64, assigned bool) clients.Client {
	client := clients.Client{
		ID:            id,
		Name:          "Client",
		ProjectStatus: status,
		AmountPaid:    decimal.NewFromInt(paidUSD),
		AmountPaidUSD: decimal.NewFromInt(paidUSD),
		FeeCurrency:   "USD",
		CreatedAt:     fixedNow().AddDate(0, 0, -1),
	}
	if assigned {
		client.Assignments = []clients.Assignment{{ClientID: id, TeamMemberID: 1}}
	}
	return client
}

func TestMetricsCountsActiveAndTotal(t *testing.T) {
	repo := &fakeDashboardRepo{clients: []clients.Client{
		testClient(1, clients.StatusPlanning, 100, true),
		testClient(2, clients.StatusCompleted, 50, false),
	}}
	service := newTestService(repo)

	metrics, err := service.Metrics(context.Background())
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}

	if metrics.TotalClients != 2 {
		t.Errorf("TotalClients = %d, want 2", metrics.TotalClients)
	}
	if metrics.ActiveProjects != 1 {
		t.Errorf("ActiveProjects = %d, want 1 (Planning counts, Completed does not)", metrics.ActiveProjects)
	}
	if got := metrics.MonthlyRevenue.StringFixed(2); got != "150.00" {
		t.Errorf("MonthlyRevenue = %s, want 150.00", got)
	}
	if metrics.TeamUtilization != 50 {
		t.Errorf("TeamUtilization = %d, want 50 (1 of 2 clients assigned)", metrics.TeamUtilization)
	}
}

func TestMetricsTotalClientsMatchesList(t *testing.T) {
	repo := &fakeDashboardRepo{clients: []clients.Client{
		testClient(1, clients.StatusPlanning, 0, false),
		testClient(2, clients.StatusReview, 0, false),
		testClient(3, clients.StatusPaused, 0, false),
	}}
	service := newTestService(repo)

	metrics, err := service.Metrics(context.Background())
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	list, err := repo.ListClients(context.Background())
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if metrics.TotalClients != len(list) {
		t.Errorf("TotalClients = %d, want %d", metrics.TotalClients, len(list))
	}
}

func TestMetricsCurrentMonthRevenue(t *testing.T) {
	repo := &fakeDashboardRepo{transactions: []finance.Transaction{
		{ID: 1, Type: finance.TypeIncoming, AmountUSD: decimal.NewFromInt(200), Date: fixedNow().AddDate(0, 0, -3)},
		{ID: 2, Type: finance.TypeManualIncome, AmountUSD: decimal.NewFromInt(50), Date: fixedNow().AddDate(0, 0, -1)},
		{ID: 3, Type: finance.TypeIncoming, AmountUSD: decimal.NewFromInt(999), Date: fixedNow().AddDate(0, -2, 0)},
		{ID: 4, Type: finance.TypeExpense, AmountUSD: decimal.NewFromInt(75), Date: fixedNow()},
	}}
	service := newTestService(repo)

	metrics, err := service.Metrics(context.Background())
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if got := metrics.CurrentMonthRevenue.StringFixed(2); got != "250.00" {
		t.Errorf("CurrentMonthRevenue = %s, want 250.00 (only this month's income)", got)
	}
}

func TestProgressEmptySetIsZero(t *testing.T) {
	if got := Progress(nil); got != 0 {
		t.Errorf("Progress(nil) = %d, want 0", got)
	}

	noWork := []clients.Client{{ID: 1}}
	if got := Progress(noWork); got != 0 {
		t.Errorf("Progress with zero requested = %d, want 0", got)
	}
}

func TestProgressMonotonic(t *testing.T) {
	set := []clients.Client{
		{ID: 1, TotalImagesToMake: 10, ImagesMade: 2, TotalJewelryArticles: 10, JewelryArticlesMade: 0},
	}
	before := Progress(set)

	set[0].ImagesMade = 6
	after := Progress(set)

	if after <= before {
		t.Errorf("Progress went from %d to %d, want strict increase", before, after)
	}
	if after != 30 {
		t.Errorf("Progress = %d, want 30", after)
	}
}

func TestRecentTransactionsMergesAndCaps(t *testing.T) {
	repo := &fakeDashboardRepo{}
	for i := int64(1); i <= 6; i++ {
		client := testClient(i, clients.StatusInProgress, 100, false)
		client.CreatedAt = fixedNow().AddDate(0, 0, -int(i))
		repo.clients = append(repo.clients, client)
	}
	for i := int64(1); i <= 4; i++ {
		repo.transactions = append(repo.transactions, finance.Transaction{
			ID:        i,
			Type:      finance.TypeExpense,
			AmountUSD: decimal.NewFromInt(10),
			Date:      fixedNow().AddDate(0, 0, -int(i)),
		})
	}
	service := newTestService(repo)

	entries, err := service.RecentTransactions(context.Background(), 0)
	if err != nil {
		t.Fatalf("RecentTransactions: %v", err)
	}

	if len(entries) != 8 {
		t.Fatalf("len(entries) = %d, want cap of 8", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.After(entries[i-1].Date) {
			t.Fatalf("entries not sorted date desc at index %d", i)
		}
	}

	clientPayments := 0
	for _, entry := range entries {
		if entry.IsClientPayment {
			clientPayments++
			if entry.Type != finance.TypeIncoming {
				t.Errorf("client payment entry type = %s, want incoming", entry.Type)
			}
		}
	}
	if clientPayments == 0 {
		t.Error("merged feed contains no client-payment entries")
	}
}

func TestRecentTransactionsWindowExcludesOldRows(t *testing.T) {
	old := testClient(1, clients.StatusInProgress, 100, false)
	old.CreatedAt = fixedNow().AddDate(0, 0, -45)
	repo := &fakeDashboardRepo{
		clients: []clients.Client{old},
		transactions: []finance.Transaction{
			{ID: 1, Type: finance.TypeIncoming, AmountUSD: decimal.NewFromInt(10), Date: fixedNow().AddDate(0, 0, -40)},
		},
	}
	service := newTestService(repo)

	entries, err := service.RecentTransactions(context.Background(), 30)
	if err != nil {
		t.Fatalf("RecentTransactions: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0 outside 30-day window", len(entries))
	}
}

func TestFinancialSummary(t *testing.T) {
	salary := "Salary"
	expenses := "Expenses"
	client := testClient(1, clients.StatusInProgress, 400, false)
	client.TotalProjectFeeUSD = decimal.NewFromInt(1000)
	repo := &fakeDashboardRepo{
		clients: []clients.Client{client},
		transactions: []finance.Transaction{
			{ID: 1, Type: finance.TypeIncoming, AmountUSD: decimal.NewFromInt(100), Date: fixedNow()},
			{ID: 2, Type: finance.TypePaymentToTeam, AmountUSD: decimal.NewFromInt(200), Category: &salary, Date: fixedNow()},
			{ID: 3, Type: finance.TypeManualExpense, AmountUSD: decimal.NewFromInt(50), Category: &expenses, Date: fixedNow()},
		},
	}
	service := newTestService(repo)

	summary, err := service.FinancialSummary(context.Background())
	if err != nil {
		t.Fatalf("FinancialSummary: %v", err)
	}

	if got := summary.TotalIncoming.StringFixed(2); got != "500.00" {
		t.Errorf("TotalIncoming = %s, want 500.00", got)
	}
	if got := summary.TotalOutgoing.StringFixed(2); got != "250.00" {
		t.Errorf("TotalOutgoing = %s, want 250.00", got)
	}
	if got := summary.NetProfit.StringFixed(2); got != "250.00" {
		t.Errorf("NetProfit = %s, want 250.00", got)
	}
	if got := summary.PendingRevenue.StringFixed(2); got != "600.00" {
		t.Errorf("PendingRevenue = %s, want 600.00", got)
	}
	if got := summary.TeamPayments.StringFixed(2); got != "200.00" {
		t.Errorf("TeamPayments = %s, want 200.00", got)
	}
	if got := summary.TotalExpenses.StringFixed(2); got != "50.00" {
		t.Errorf("TotalExpenses = %s, want 50.00", got)
	}
	if got := summary.GrowthPercent.StringFixed(1); got != "50.0" {
		t.Errorf("GrowthPercent = %s, want 50.0", got)
	}
}
