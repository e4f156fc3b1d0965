package food

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/entities"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetFoods(ctx context.Context, filter domain.FoodFilter) ([]*entities.Food, error)
		ReplaceFood(ctx context.Context, id string, food *entities.Food) (int64, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		UpdateFoodStatus(ctx context.Context, id string, status string) (int64, error)
		DeleteFood(ctx context.Context, id string) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// GetFoods applies the filter mechanically; the service owns the query
// construction rules (default status, sort allowlist, limit cap).
func (r *foodRepository) GetFoods(ctx context.Context, filter domain.FoodFilter) ([]*entities.Food, error) {
	query := r.db.WithContext(ctx).Model(&entities.Food{})

	if filter.ID != "" {
		query = query.Where("id = ?", filter.ID)
	}
	if filter.DonorEmail != "" {
		query = query.Where("donor_email = ?", filter.DonorEmail)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SortBy != "" && filter.SortOrder != "" {
		query = query.Order(fmt.Sprintf("%s %s", filter.SortBy, filter.SortOrder))
	}

	var foods []*entities.Food
	if err := query.Limit(filter.Limit).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// ReplaceFood overwrites every stored column with the supplied document,
// zero values included; id and created_at are kept.
func (r *foodRepository) ReplaceFood(ctx context.Context, id string, food *entities.Food) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("id = ?", id).
		Select("*").Omit("id", "created_at").
		Updates(food)
	return res.RowsAffected, res.Error
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) UpdateFoodStatus(ctx context.Context, id string, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{})
	return res.RowsAffected, res.Error
}
