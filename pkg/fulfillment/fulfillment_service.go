package fulfillment

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/pkg/food"
	"UnityPlate-Backend/pkg/request"
	"context"
)

type (
	FulfillmentService interface {
		ConfirmRequest(ctx context.Context, requestID, foodID string) (domain.ConfirmRequestResponse, error)
	}

	fulfillmentService struct {
		foodRepository    food.FoodRepository
		requestRepository request.RequestRepository
	}
)

func NewFulfillmentService(foodRepository food.FoodRepository, requestRepository request.RequestRepository) FulfillmentService {
	return &fulfillmentService{
		foodRepository:    foodRepository,
		requestRepository: requestRepository,
	}
}

// ConfirmRequest runs the confirm transition as three ordered writes:
//
//  1. cancel every request referencing the food
//  2. mark the chosen request delivered
//  3. mark the food delivered
//
// The bulk cancel in step 1 matches the chosen request too, so it must run
// before step 2 or it would overwrite the winner back to canceled. The
// sequence is not atomic: a failure between steps leaves partial state and
// surfaces immediately, with no compensation. Rerunning the whole sequence
// with the same ids converges to the same end state.
func (s *fulfillmentService) ConfirmRequest(ctx context.Context, requestID, foodID string) (domain.ConfirmRequestResponse, error) {
	canceled, err := s.requestRepository.CancelRequestsByFoodID(ctx, foodID)
	if err != nil {
		return domain.ConfirmRequestResponse{}, err
	}

	confirmed, err := s.requestRepository.UpdateRequestStatus(ctx, requestID, domain.RequestStatusDelivered)
	if err != nil {
		return domain.ConfirmRequestResponse{}, err
	}

	delivered, err := s.foodRepository.UpdateFoodStatus(ctx, foodID, domain.FoodStatusDelivered)
	if err != nil {
		return domain.ConfirmRequestResponse{}, err
	}

	return domain.ConfirmRequestResponse{
		CanceledRequests: canceled,
		ConfirmedRequest: confirmed,
		DeliveredFood:    delivered,
	}, nil
}
