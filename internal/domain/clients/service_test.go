package clients

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeClientsRepo struct {
	clients     map[int64]*Client
	assignments map[int64]map[int64]time.Time
	activities  []Activity
	nextID      int64
}

func newFakeClientsRepo() *fakeClientsRepo {
	return &fakeClientsRepo{
		clients:     make(map[int64]*Client),
		assignments: make(map[int64]map[int64]time.Time),
		nextID:      1,
	}
}

func (r *fakeClientsRepo) List(ctx context.Context) ([]Client, error) {
	items := make([]Client, 0, len(r.clients))
	for _, client := range r.clients {
		copied := *client
		copied.Assignments = r.assignmentsFor(client.ID)
		items = append(items, copied)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].LastActivity.After(items[j].LastActivity)
	})
	return items, nil
}

func (r *fakeClientsRepo) GetByID(ctx context.Context, id int64) (*Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	copied := *client
	copied.Assignments = r.assignmentsFor(id)
	return &copied, nil
}

func (r *fakeClientsRepo) Create(ctx context.Context, client *Client) error {
	client.ID = r.nextID
	r.nextID++
	client.CreatedAt = time.Now().UTC()
	client.UpdatedAt = client.CreatedAt
	stored := *client
	r.clients[client.ID] = &stored
	return nil
}

func (r *fakeClientsRepo) Update(ctx context.Context, client *Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return ErrClientNotFound
	}
	stored := *client
	r.clients[client.ID] = &stored
	return nil
}

func (r *fakeClientsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	delete(r.assignments, id)
	return true, nil
}

func (r *fakeClientsRepo) Assign(ctx context.Context, clientID, teamMemberID int64) error {
	if r.assignments[clientID] == nil {
		r.assignments[clientID] = make(map[int64]time.Time)
	}
	if _, ok := r.assignments[clientID][teamMemberID]; !ok {
		r.assignments[clientID][teamMemberID] = time.Now().UTC()
	}
	return nil
}

func (r *fakeClientsRepo) ListActivities(ctx context.Context, clientID int64) ([]Activity, error) {
	items := make([]Activity, 0)
	for _, activity := range r.activities {
		if activity.ClientID == clientID {
			items = append(items, activity)
		}
	}
	return items, nil
}

func (r *fakeClientsRepo) CreateActivity(ctx context.Context, activity *Activity) error {
	activity.ID = r.nextID
	r.nextID++
	activity.CreatedAt = time.Now().UTC()
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *fakeClientsRepo) ListRecentActivities(ctx context.Context, limit int) ([]ActivityWithClient, error) {
	items := make([]ActivityWithClient, 0)
	for _, activity := range r.activities {
		name := ""
		if client, ok := r.clients[activity.ClientID]; ok {
			name = client.Name
		}
		items = append(items, ActivityWithClient{Activity: activity, ClientName: name})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeClientsRepo) assignmentsFor(clientID int64) []Assignment {
	pairs := r.assignments[clientID]
	result := make([]Assignment, 0, len(pairs))
	for teamMemberID, assignedAt := range pairs {
		result = append(result, Assignment{
			ClientID:     clientID,
			TeamMemberID: teamMemberID,
			AssignedAt:   assignedAt,
		})
	}
	return result
}

func validCreateInput() CreateClientInput {
	return CreateClientInput{
		Name:                   "Atlas Jewellery",
		ContactPerson:          "Imran",
		Country:                "UAE",
		CountryCode:            "AE",
		ContractType:           ContractMonthly,
		ProjectStatus:          StatusInProgress,
		ContractStartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpectedCompletionDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalProjectFee:        decimal.NewFromInt(3670),
		FeeCurrency:            "AED",
	}
}

func TestCreateClientDerivesUSDMirrors(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	input := validCreateInput()
	paid := decimal.NewFromInt(1468)
	input.AmountPaid = &paid

	client, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got := client.TotalProjectFeeUSD.StringFixed(2); got != "1000.00" {
		t.Errorf("TotalProjectFeeUSD = %s, want 1000.00", got)
	}
	if got := client.AmountPaidUSD.StringFixed(2); got != "400.00" {
		t.Errorf("AmountPaidUSD = %s, want 400.00", got)
	}
}

func TestCreateClientExplicitUSDWins(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	input := validCreateInput()
	explicit := decimal.NewFromInt(999)
	input.TotalProjectFeeUSD = &explicit

	client, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := client.TotalProjectFeeUSD.StringFixed(2); got != "999.00" {
		t.Errorf("TotalProjectFeeUSD = %s, want 999.00", got)
	}
}

func TestCreateClientDefaultsCurrencyToUSD(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	input := validCreateInput()
	input.FeeCurrency = ""

	client, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if client.FeeCurrency != "USD" {
		t.Errorf("FeeCurrency = %q, want USD", client.FeeCurrency)
	}
	if got := client.TotalProjectFeeUSD.StringFixed(2); got != "3670.00" {
		t.Errorf("TotalProjectFeeUSD = %s, want pass-through 3670.00", got)
	}
}

func TestCreateClientInvalidEnums(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	input := validCreateInput()
	input.ContractType = "weekly"
	if _, err := service.Create(context.Background(), input); !errors.Is(err, ErrInvalidContractType) {
		t.Errorf("Create with bad contract type: err = %v, want ErrInvalidContractType", err)
	}

	input = validCreateInput()
	input.ProjectStatus = "Shipped"
	if _, err := service.Create(context.Background(), input); !errors.Is(err, ErrInvalidProjectStatus) {
		t.Errorf("Create with bad status: err = %v, want ErrInvalidProjectStatus", err)
	}
}

func TestUpdateReDerivesMirrorOnAmountChange(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	client, err := service.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	paid := decimal.NewFromInt(367)
	updated, err := service.Update(context.Background(), client.ID, UpdateClientInput{AmountPaid: &paid})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := updated.AmountPaidUSD.StringFixed(2); got != "100.00" {
		t.Errorf("AmountPaidUSD = %s, want 100.00", got)
	}
}

func TestUpdateMissingClient(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	name := "Ghost"
	if _, err := service.Update(context.Background(), 42, UpdateClientInput{Name: &name}); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("Update missing: err = %v, want ErrClientNotFound", err)
	}
}

func TestDeleteThenListExcludesClient(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	client, err := service.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := service.Delete(context.Background(), client.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	list, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, item := range list {
		if item.ID == client.ID {
			t.Errorf("deleted client %d still listed", client.ID)
		}
	}

	if err := service.Delete(context.Background(), client.ID); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("second Delete: err = %v, want ErrClientNotFound", err)
	}
}

func TestAssignTeamMemberIdempotent(t *testing.T) {
	repo := newFakeClientsRepo()
	service := NewService(repo)

	client, err := service.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := service.AssignTeamMember(context.Background(), client.ID, 7); err != nil {
			t.Fatalf("AssignTeamMember #%d: %v", i+1, err)
		}
	}

	reloaded, err := service.GetByID(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(reloaded.Assignments) != 1 {
		t.Errorf("len(Assignments) = %d, want 1 after double assign", len(reloaded.Assignments))
	}
}

func TestCreateActivityUnknownClient(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	_, err := service.CreateActivity(context.Background(), CreateActivityInput{
		ClientID:    99,
		Type:        "note",
		Description: "called the client",
	})
	if !errors.Is(err, ErrClientNotFound) {
		t.Errorf("CreateActivity: err = %v, want ErrClientNotFound", err)
	}
}
