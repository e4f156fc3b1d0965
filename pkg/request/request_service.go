package request

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	RequestService interface {
		AddRequest(ctx context.Context, req domain.AddRequestRequest) (domain.AddRequestResponse, error)
		GetRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.RequestResponse, error)
		CancelRequest(ctx context.Context, id string) (domain.CancelRequestResponse, error)
	}

	requestService struct {
		requestRepository RequestRepository
	}
)

func NewRequestService(requestRepository RequestRepository) RequestService {
	return &requestService{requestRepository: requestRepository}
}

// AddRequest suppresses duplicates: a second claim by the same requester on
// the same food is a no-op reported as already_requested, never an error.
func (s *requestService) AddRequest(ctx context.Context, req domain.AddRequestRequest) (domain.AddRequestResponse, error) {
	count, err := s.requestRepository.CountByFoodAndRequester(ctx, req.FoodID, req.RequesterEmail)
	if err != nil {
		return domain.AddRequestResponse{}, err
	}
	if count > 0 {
		return domain.AddRequestResponse{AlreadyRequested: true}, nil
	}

	var expiredAt time.Time
	if req.ExpiredAt != "" {
		expiredAt, err = time.Parse("2006-01-02", req.ExpiredAt)
		if err != nil {
			return domain.AddRequestResponse{}, domain.ErrInvalidExpiryDate
		}
	}

	request := &entities.Request{
		ID:             uuid.New(),
		FoodID:         req.FoodID,
		FoodName:       req.FoodName,
		FoodImage:      req.FoodImage,
		RequesterEmail: req.RequesterEmail,
		RequesterName:  req.RequesterName,
		RequesterImage: req.RequesterImage,
		DonorEmail:     req.DonorEmail,
		DonorName:      req.DonorName,
		PickupLocation: req.PickupLocation,
		ExpiredAt:      expiredAt,
		RequestDate:    time.Now(),
		Message:        req.Message,
		Status:         domain.RequestStatusPending,
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return domain.AddRequestResponse{}, err
	}
	return domain.AddRequestResponse{ID: request.ID.String()}, nil
}

// GetRequests requires one of requester, donor or id. When several are
// present the selector precedence is requester > donor > id; when none is
// present the call fails before touching the store.
func (s *requestService) GetRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.RequestResponse, error) {
	if filter.Requester == "" && filter.Donor == "" && filter.ID == "" {
		return nil, domain.ErrInsufficientFilter
	}

	requests, err := s.requestRepository.GetRequests(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, domain.RequestResponse{
			ID:             request.ID.String(),
			FoodID:         request.FoodID,
			FoodName:       request.FoodName,
			FoodImage:      request.FoodImage,
			RequesterEmail: request.RequesterEmail,
			RequesterName:  request.RequesterName,
			RequesterImage: request.RequesterImage,
			DonorEmail:     request.DonorEmail,
			DonorName:      request.DonorName,
			PickupLocation: request.PickupLocation,
			ExpiredAt:      request.ExpiredAt,
			RequestDate:    request.RequestDate,
			Message:        request.Message,
			Status:         request.Status,
		})
	}
	return response, nil
}

// CancelRequest deletes the owner's request. A zero-match delete is not an
// error, so repeating the call is harmless.
func (s *requestService) CancelRequest(ctx context.Context, id string) (domain.CancelRequestResponse, error) {
	deleted, err := s.requestRepository.DeleteRequest(ctx, id)
	if err != nil {
		return domain.CancelRequestResponse{}, err
	}
	return domain.CancelRequestResponse{DeletedRequests: deleted}, nil
}
