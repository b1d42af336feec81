package team

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type fakeTeamRepo struct {
	members map[int64]*TeamMember
	nextID  int64
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{members: make(map[int64]*TeamMember), nextID: 1}
}

func (r *fakeTeamRepo) List(ctx context.Context, activeOnly bool) ([]TeamMember, error) {
	items := make([]TeamMember, 0, len(r.members))
	for _, member := range r.members {
		if activeOnly && !member.IsActive {
			continue
		}
		items = append(items, *member)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, id int64) (*TeamMember, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, ErrTeamMemberNotFound
	}
	copied := *member
	return &copied, nil
}

func (r *fakeTeamRepo) Create(ctx context.Context, member *TeamMember) error {
	member.ID = r.nextID
	r.nextID++
	stored := *member
	r.members[member.ID] = &stored
	return nil
}

func (r *fakeTeamRepo) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	member, ok := r.members[id]
	if !ok {
		return false, nil
	}
	member.IsActive = active
	return true, nil
}

func TestCreateValidatesRole(t *testing.T) {
	service := NewService(newFakeTeamRepo())

	_, err := service.Create(context.Background(), CreateTeamMemberInput{
		Name:       "Sara",
		WhatsappNo: "+971500000000",
		Country:    "UAE",
		Role:       "manager",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}

func TestDeactivateHidesMemberFromList(t *testing.T) {
	service := NewService(newFakeTeamRepo())

	member, err := service.Create(context.Background(), CreateTeamMemberInput{
		Name:       "Sara",
		WhatsappNo: "+971500000000",
		Country:    "UAE",
		Role:       RoleFreelancer,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !member.IsActive {
		t.Fatal("new member not active")
	}

	if err := service.Deactivate(context.Background(), member.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	active, err := service.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("len(active) = %d, want 0 after deactivation", len(active))
	}

	// the row survives for historical references
	if _, err := service.GetByID(context.Background(), member.ID); err != nil {
		t.Errorf("GetByID after deactivate: %v", err)
	}
}

func TestDeactivateMissingMember(t *testing.T) {
	service := NewService(newFakeTeamRepo())

	if err := service.Deactivate(context.Background(), 9); !errors.Is(err, ErrTeamMemberNotFound) {
		t.Errorf("err = %v, want ErrTeamMemberNotFound", err)
	}
}
