package request

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestRepository struct {
	requests map[string]*entities.Request
	reads    int
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{requests: map[string]*entities.Request{}}
}

func (r *fakeRequestRepository) CreateRequest(_ context.Context, request *entities.Request) error {
	r.requests[request.ID.String()] = request
	return nil
}

func (r *fakeRequestRepository) CountByFoodAndRequester(_ context.Context, foodID, requesterEmail string) (int64, error) {
	var count int64
	for _, request := range r.requests {
		if request.FoodID == foodID && request.RequesterEmail == requesterEmail {
			count++
		}
	}
	return count, nil
}

func (r *fakeRequestRepository) GetRequests(_ context.Context, filter domain.RequestFilter) ([]*entities.Request, error) {
	r.reads++
	var out []*entities.Request
	for _, request := range r.requests {
		switch {
		case filter.Requester != "":
			if request.RequesterEmail == filter.Requester {
				out = append(out, request)
			}
		case filter.Donor != "":
			if request.DonorEmail == filter.Donor {
				out = append(out, request)
			}
		case filter.ID != "":
			if request.ID.String() == filter.ID {
				out = append(out, request)
			}
		}
	}
	return out, nil
}

func (r *fakeRequestRepository) CancelRequestsByFoodID(_ context.Context, foodID string) (int64, error) {
	var affected int64
	for _, request := range r.requests {
		if request.FoodID == foodID {
			request.Status = domain.RequestStatusCanceled
			affected++
		}
	}
	return affected, nil
}

func (r *fakeRequestRepository) UpdateRequestStatus(_ context.Context, id string, status string) (int64, error) {
	request, ok := r.requests[id]
	if !ok {
		return 0, nil
	}
	request.Status = status
	return 1, nil
}

func (r *fakeRequestRepository) DeleteRequest(_ context.Context, id string) (int64, error) {
	if _, ok := r.requests[id]; !ok {
		return 0, nil
	}
	delete(r.requests, id)
	return 1, nil
}

func (r *fakeRequestRepository) DeleteRequestsByFoodID(_ context.Context, foodID string) (int64, error) {
	var affected int64
	for id, request := range r.requests {
		if request.FoodID == foodID {
			delete(r.requests, id)
			affected++
		}
	}
	return affected, nil
}

func addRequestFixture(foodID, requester string) domain.AddRequestRequest {
	return domain.AddRequestRequest{
		FoodID:         foodID,
		FoodName:       "Bread",
		RequesterEmail: requester,
		RequesterName:  "Requester",
		DonorEmail:     "donor@example.com",
	}
}

func TestAddRequestSuppressesDuplicates(t *testing.T) {
	repo := newFakeRequestRepository()
	service := NewRequestService(repo)
	ctx := context.Background()

	first, err := service.AddRequest(ctx, addRequestFixture("food-1", "alice@example.com"))
	require.NoError(t, err)
	assert.False(t, first.AlreadyRequested)
	assert.NotEmpty(t, first.ID)

	second, err := service.AddRequest(ctx, addRequestFixture("food-1", "alice@example.com"))
	require.NoError(t, err)
	assert.True(t, second.AlreadyRequested)
	assert.Empty(t, second.ID)
	assert.Len(t, repo.requests, 1, "duplicate must not be inserted")
}

func TestAddRequestAllowsDifferentRequesters(t *testing.T) {
	repo := newFakeRequestRepository()
	service := NewRequestService(repo)
	ctx := context.Background()

	_, err := service.AddRequest(ctx, addRequestFixture("food-1", "alice@example.com"))
	require.NoError(t, err)
	res, err := service.AddRequest(ctx, addRequestFixture("food-1", "bob@example.com"))
	require.NoError(t, err)

	assert.False(t, res.AlreadyRequested)
	assert.Len(t, repo.requests, 2)
}

func TestAddRequestDefaultsToPending(t *testing.T) {
	repo := newFakeRequestRepository()
	service := NewRequestService(repo)

	res, err := service.AddRequest(context.Background(), addRequestFixture("food-1", "alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, repo.requests[res.ID].Status)
}

func TestGetRequestsRequiresASelector(t *testing.T) {
	repo := newFakeRequestRepository()
	service := NewRequestService(repo)

	_, err := service.GetRequests(context.Background(), domain.RequestFilter{})
	assert.ErrorIs(t, err, domain.ErrInsufficientFilter)
	assert.Zero(t, repo.reads, "an empty filter must not reach the store")
}

func TestGetRequestsByRequester(t *testing.T) {
	repo := newFakeRequestRepository()
	service := NewRequestService(repo)
	ctx := context.Background()

	_, err := service.AddRequest(ctx, addRequestFixture("food-1", "alice@example.com"))
	require.NoError(t, err)
	_, err = service.AddRequest(ctx, addRequestFixture("food-2", "bob@example.com"))
	require.NoError(t, err)

	requests, err := service.GetRequests(ctx, domain.RequestFilter{Requester: "alice@example.com"})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "food-1", requests[0].FoodID)
}

func TestCancelRequestIsIdempotent(t *testing.T) {
	repo := newFakeRequestRepository()
	service := NewRequestService(repo)
	ctx := context.Background()

	created, err := service.AddRequest(ctx, addRequestFixture("food-1", "alice@example.com"))
	require.NoError(t, err)

	first, err := service.CancelRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.DeletedRequests)

	second, err := service.CancelRequest(ctx, created.ID)
	require.NoError(t, err, "a zero-match delete is not an error")
	assert.Equal(t, int64(0), second.DeletedRequests)
}
