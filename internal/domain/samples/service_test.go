package samples

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type fakeSamplesRepo struct {
	requests map[int64]*SampleRequest
	nextID   int64
}

func newFakeSamplesRepo() *fakeSamplesRepo {
	return &fakeSamplesRepo{requests: make(map[int64]*SampleRequest), nextID: 1}
}

func (r *fakeSamplesRepo) List(ctx context.Context) ([]SampleRequest, error) {
	items := make([]SampleRequest, 0, len(r.requests))
	for _, request := range r.requests {
		items = append(items, *request)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].RequestDate.After(items[j].RequestDate) })
	return items, nil
}

func (r *fakeSamplesRepo) GetByID(ctx context.Context, id int64) (*SampleRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, ErrSampleRequestNotFound
	}
	copied := *request
	return &copied, nil
}

func (r *fakeSamplesRepo) Create(ctx context.Context, request *SampleRequest) error {
	request.ID = r.nextID
	r.nextID++
	stored := *request
	r.requests[request.ID] = &stored
	return nil
}

func (r *fakeSamplesRepo) Update(ctx context.Context, request *SampleRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return ErrSampleRequestNotFound
	}
	stored := *request
	r.requests[request.ID] = &stored
	return nil
}

func (r *fakeSamplesRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.requests[id]; !ok {
		return false, nil
	}
	delete(r.requests, id)
	return true, nil
}

func TestCreateDefaultsStatus(t *testing.T) {
	service := NewService(newFakeSamplesRepo())

	request, err := service.Create(context.Background(), CreateSampleRequestInput{
		CompanyName: "Gulf Gems",
		Country:     "Oman",
		RequestDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if request.Status != StatusInProcessing {
		t.Errorf("Status = %q, want %q", request.Status, StatusInProcessing)
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	service := NewService(newFakeSamplesRepo())

	_, err := service.Create(context.Background(), CreateSampleRequestInput{
		CompanyName: "Gulf Gems",
		Country:     "Oman",
		RequestDate: time.Now(),
		Status:      "lost",
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateAllowsAnyStatusTransition(t *testing.T) {
	service := NewService(newFakeSamplesRepo())

	request, err := service.Create(context.Background(), CreateSampleRequestInput{
		CompanyName: "Gulf Gems",
		Country:     "Oman",
		RequestDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, status := range []Status{StatusDelivered, StatusInProcessing, StatusRejected} {
		updated, err := service.Update(context.Background(), request.ID, UpdateSampleRequestInput{Status: &status})
		if err != nil {
			t.Fatalf("Update to %q: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("Status = %q, want %q", updated.Status, status)
		}
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	service := NewService(newFakeSamplesRepo())

	request, err := service.Create(context.Background(), CreateSampleRequestInput{
		CompanyName: "Gulf Gems",
		Country:     "Oman",
		RequestDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	country := "Qatar"
	updated, err := service.Update(context.Background(), request.ID, UpdateSampleRequestInput{Country: &country})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Country != "Qatar" {
		t.Errorf("Country = %q, want Qatar", updated.Country)
	}
	if updated.CompanyName != "Gulf Gems" {
		t.Errorf("CompanyName = %q, want unchanged", updated.CompanyName)
	}
}

func TestDeleteMissingRequest(t *testing.T) {
	service := NewService(newFakeSamplesRepo())

	if err := service.Delete(context.Background(), 11); !errors.Is(err, ErrSampleRequestNotFound) {
		t.Errorf("err = %v, want ErrSampleRequestNotFound", err)
	}
}
