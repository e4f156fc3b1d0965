package request

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.Request) error
		CountByFoodAndRequester(ctx context.Context, foodID, requesterEmail string) (int64, error)
		GetRequests(ctx context.Context, filter domain.RequestFilter) ([]*entities.Request, error)
		CancelRequestsByFoodID(ctx context.Context, foodID string) (int64, error)
		UpdateRequestStatus(ctx context.Context, id string, status string) (int64, error)
		DeleteRequest(ctx context.Context, id string) (int64, error)
		DeleteRequestsByFoodID(ctx context.Context, foodID string) (int64, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.Request) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) CountByFoodAndRequester(ctx context.Context, foodID, requesterEmail string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Request{}).
		Where("food_id = ? AND requester_email = ?", foodID, requesterEmail).
		Count(&count).Error
	return count, err
}

// GetRequests applies exactly one selector; the service guarantees the
// filter is never empty.
func (r *requestRepository) GetRequests(ctx context.Context, filter domain.RequestFilter) ([]*entities.Request, error) {
	query := r.db.WithContext(ctx).Model(&entities.Request{})

	switch {
	case filter.Requester != "":
		query = query.Where("requester_email = ?", filter.Requester)
	case filter.Donor != "":
		query = query.Where("donor_email = ?", filter.Donor)
	case filter.ID != "":
		query = query.Where("id = ?", filter.ID)
	}

	var requests []*entities.Request
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// CancelRequestsByFoodID bulk-cancels every request referencing the food,
// regardless of prior status.
func (r *requestRepository) CancelRequestsByFoodID(ctx context.Context, foodID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Request{}).
		Where("food_id = ?", foodID).
		Update("status", domain.RequestStatusCanceled)
	return res.RowsAffected, res.Error
}

func (r *requestRepository) UpdateRequestStatus(ctx context.Context, id string, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Request{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *requestRepository) DeleteRequest(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Request{})
	return res.RowsAffected, res.Error
}

func (r *requestRepository) DeleteRequestsByFoodID(ctx context.Context, foodID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("food_id = ?", foodID).Delete(&entities.Request{})
	return res.RowsAffected, res.Error
}
