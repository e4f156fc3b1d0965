package food

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/entities"
	"UnityPlate-Backend/internal/utils/storage"
	"UnityPlate-Backend/pkg/request"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultListLimit = 500

// Columns the public listing may sort on. The reference passed the sort key
// straight through to the store; with SQL an unchecked column name is an
// injection vector, so anything outside this set is ignored.
var sortableColumns = map[string]bool{
	"expired_at":    true,
	"created_at":    true,
	"food_name":     true,
	"food_quantity": true,
}

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.AddFoodResponse, error)
		GetFoods(ctx context.Context, filter domain.FoodFilter) ([]domain.FoodResponse, error)
		EditFood(ctx context.Context, id string, req domain.EditFoodRequest) error
		DeleteFood(ctx context.Context, id string) (domain.DeleteFoodResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (domain.UploadFoodImageResponse, error)
	}

	foodService struct {
		foodRepository    FoodRepository
		requestRepository request.RequestRepository
		s3                storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, requestRepository request.RequestRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository:    foodRepository,
		requestRepository: requestRepository,
		s3:                s3,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.AddFoodResponse, error) {
	expiredAt, err := time.Parse("2006-01-02", req.ExpiredAt)
	if err != nil {
		return domain.AddFoodResponse{}, domain.ErrInvalidExpiryDate
	}

	food := &entities.Food{
		ID:              uuid.New(),
		FoodName:        req.FoodName,
		FoodImage:       req.FoodImage,
		FoodQuantity:    req.FoodQuantity,
		PickupLocation:  req.PickupLocation,
		ExpiredAt:       expiredAt,
		AdditionalNotes: req.AdditionalNotes,
		DonorEmail:      req.DonorEmail,
		DonorName:       req.DonorName,
		DonorImage:      req.DonorImage,
		// the catalog stores whatever status the caller supplies; the
		// browse default in normalizeFilter is what keeps non-available
		// listings out of anonymous views
		Status: req.Status,
	}

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.AddFoodResponse{}, err
	}
	return domain.AddFoodResponse{ID: food.ID.String(), Status: food.Status}, nil
}

// normalizeFilter enumerates the listing cases explicitly:
//   - id or donor email present: exact match, any status
//   - neither present: browse view, restricted to status "available"
//
// Sorting applies only when both sortBy and sortOrder are usable; the limit
// falls back to the browse cap.
func normalizeFilter(filter domain.FoodFilter) domain.FoodFilter {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	if filter.ID == "" && filter.DonorEmail == "" {
		filter.Status = domain.FoodStatusAvailable
	}

	order := strings.ToLower(filter.SortOrder)
	if !sortableColumns[filter.SortBy] || (order != "asc" && order != "desc") {
		filter.SortBy = ""
		filter.SortOrder = ""
	} else {
		filter.SortOrder = order
	}

	return filter
}

func (s *foodService) GetFoods(ctx context.Context, filter domain.FoodFilter) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx, normalizeFilter(filter))
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, domain.FoodResponse{
			ID:              food.ID.String(),
			FoodName:        food.FoodName,
			FoodImage:       food.FoodImage,
			FoodQuantity:    food.FoodQuantity,
			PickupLocation:  food.PickupLocation,
			ExpiredAt:       food.ExpiredAt,
			AdditionalNotes: food.AdditionalNotes,
			DonorEmail:      food.DonorEmail,
			DonorName:       food.DonorName,
			DonorImage:      food.DonorImage,
			Status:          food.Status,
			CreatedAt:       food.CreatedAt,
		})
	}
	return response, nil
}

// EditFood replaces the stored document wholesale rather than merging.
func (s *foodService) EditFood(ctx context.Context, id string, req domain.EditFoodRequest) error {
	expiredAt, err := time.Parse("2006-01-02", req.ExpiredAt)
	if err != nil {
		return domain.ErrInvalidExpiryDate
	}

	replacement := &entities.Food{
		FoodName:        req.FoodName,
		FoodImage:       req.FoodImage,
		FoodQuantity:    req.FoodQuantity,
		PickupLocation:  req.PickupLocation,
		ExpiredAt:       expiredAt,
		AdditionalNotes: req.AdditionalNotes,
		DonorEmail:      req.DonorEmail,
		DonorName:       req.DonorName,
		DonorImage:      req.DonorImage,
		Status:          req.Status,
	}

	replaced, err := s.foodRepository.ReplaceFood(ctx, id, replacement)
	if err != nil {
		return err
	}
	if replaced == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}

// DeleteFood removes the listing and every request referencing it. Both
// deletes run even when the food delete matches nothing, which keeps the
// operation idempotent and leaves no orphaned requests behind.
func (s *foodService) DeleteFood(ctx context.Context, id string) (domain.DeleteFoodResponse, error) {
	deletedFoods, err := s.foodRepository.DeleteFood(ctx, id)
	if err != nil {
		return domain.DeleteFoodResponse{}, err
	}

	deletedRequests, err := s.requestRepository.DeleteRequestsByFoodID(ctx, id)
	if err != nil {
		return domain.DeleteFoodResponse{}, err
	}

	return domain.DeleteFoodResponse{
		DeletedFoods:    deletedFoods,
		DeletedRequests: deletedRequests,
	}, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (domain.UploadFoodImageResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadFoodImageResponse{}, domain.ErrFoodNotFound
		}
		return domain.UploadFoodImageResponse{}, err
	}

	fileName := fmt.Sprintf("food-%s", food.ID.String())
	var objectKey string
	var uploadErr error

	if food.FoodImage != "" {
		existingKey := s.s3.GetObjectKeyFromLink(food.FoodImage)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "foods", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "foods", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.UploadFoodImageResponse{}, uploadErr
	}

	food.FoodImage = s.s3.GetPublicLinkKey(objectKey)
	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.UploadFoodImageResponse{}, err
	}

	return domain.UploadFoodImageResponse{
		FoodID:   food.ID.String(),
		ImageURL: food.FoodImage,
	}, nil
}
