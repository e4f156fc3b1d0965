package food

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/entities"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	foods      map[string]*entities.Food
	lastFilter domain.FoodFilter
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{foods: map[string]*entities.Food{}}
}

func (r *fakeFoodRepository) AddFood(_ context.Context, food *entities.Food) error {
	r.foods[food.ID.String()] = food
	return nil
}

func (r *fakeFoodRepository) GetFoodByID(_ context.Context, id string) (*entities.Food, error) {
	food, ok := r.foods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return food, nil
}

func (r *fakeFoodRepository) GetFoods(_ context.Context, filter domain.FoodFilter) ([]*entities.Food, error) {
	r.lastFilter = filter
	var out []*entities.Food
	for _, food := range r.foods {
		if filter.ID != "" && food.ID.String() != filter.ID {
			continue
		}
		if filter.DonorEmail != "" && food.DonorEmail != filter.DonorEmail {
			continue
		}
		if filter.Status != "" && food.Status != filter.Status {
			continue
		}
		out = append(out, food)
	}
	return out, nil
}

func (r *fakeFoodRepository) ReplaceFood(_ context.Context, id string, food *entities.Food) (int64, error) {
	existing, ok := r.foods[id]
	if !ok {
		return 0, nil
	}
	food.ID = existing.ID
	food.CreatedAt = existing.CreatedAt
	r.foods[id] = food
	return 1, nil
}

func (r *fakeFoodRepository) UpdateFood(_ context.Context, food *entities.Food) error {
	r.foods[food.ID.String()] = food
	return nil
}

func (r *fakeFoodRepository) UpdateFoodStatus(_ context.Context, id string, status string) (int64, error) {
	food, ok := r.foods[id]
	if !ok {
		return 0, nil
	}
	food.Status = status
	return 1, nil
}

func (r *fakeFoodRepository) DeleteFood(_ context.Context, id string) (int64, error) {
	if _, ok := r.foods[id]; !ok {
		return 0, nil
	}
	delete(r.foods, id)
	return 1, nil
}

type fakeCascadeRepository struct {
	requestsByFood map[string]int64
	deleteCalls    []string
}

func (r *fakeCascadeRepository) CreateRequest(context.Context, *entities.Request) error { return nil }
func (r *fakeCascadeRepository) CountByFoodAndRequester(context.Context, string, string) (int64, error) {
	return 0, nil
}
func (r *fakeCascadeRepository) GetRequests(context.Context, domain.RequestFilter) ([]*entities.Request, error) {
	return nil, nil
}
func (r *fakeCascadeRepository) CancelRequestsByFoodID(context.Context, string) (int64, error) {
	return 0, nil
}
func (r *fakeCascadeRepository) UpdateRequestStatus(context.Context, string, string) (int64, error) {
	return 0, nil
}
func (r *fakeCascadeRepository) DeleteRequest(context.Context, string) (int64, error) {
	return 0, nil
}
func (r *fakeCascadeRepository) DeleteRequestsByFoodID(_ context.Context, foodID string) (int64, error) {
	r.deleteCalls = append(r.deleteCalls, foodID)
	deleted := r.requestsByFood[foodID]
	delete(r.requestsByFood, foodID)
	return deleted, nil
}

type stubS3 struct {
	uploaded map[string]string
}

func (s *stubS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName
	s.uploaded[key] = fileName
	return key, nil
}
func (s *stubS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	s.uploaded[objectKey] = objectKey
	return objectKey, nil
}
func (s *stubS3) DeleteFile(string) error { return nil }
func (s *stubS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}
func (s *stubS3) GetObjectKeyFromLink(string) string { return "" }

func addFoodFixture() domain.AddFoodRequest {
	return domain.AddFoodRequest{
		FoodName:       "Rice Box",
		FoodQuantity:   3,
		PickupLocation: "Dhanmondi",
		ExpiredAt:      "2026-10-01",
		DonorEmail:     "donor@example.com",
		DonorName:      "Donor",
		Status:         domain.FoodStatusAvailable,
	}
}

func TestNormalizeFilterDefaultsBrowseToAvailable(t *testing.T) {
	filter := normalizeFilter(domain.FoodFilter{})

	assert.Equal(t, domain.FoodStatusAvailable, filter.Status)
	assert.Equal(t, defaultListLimit, filter.Limit)
}

func TestNormalizeFilterSkipsStatusForExactLookups(t *testing.T) {
	byID := normalizeFilter(domain.FoodFilter{ID: "some-id"})
	assert.Empty(t, byID.Status)

	byDonor := normalizeFilter(domain.FoodFilter{DonorEmail: "donor@example.com"})
	assert.Empty(t, byDonor.Status)
}

func TestNormalizeFilterSortAllowlist(t *testing.T) {
	ok := normalizeFilter(domain.FoodFilter{SortBy: "expired_at", SortOrder: "DESC"})
	assert.Equal(t, "expired_at", ok.SortBy)
	assert.Equal(t, "desc", ok.SortOrder)

	injected := normalizeFilter(domain.FoodFilter{SortBy: "expired_at; DROP TABLE foods", SortOrder: "asc"})
	assert.Empty(t, injected.SortBy)
	assert.Empty(t, injected.SortOrder)

	halfSpecified := normalizeFilter(domain.FoodFilter{SortBy: "expired_at"})
	assert.Empty(t, halfSpecified.SortBy)
}

func TestGetFoodsBrowseHidesDelivered(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, &fakeCascadeRepository{}, nil)
	ctx := context.Background()

	available := &entities.Food{ID: uuid.New(), FoodName: "Bread", Status: domain.FoodStatusAvailable}
	delivered := &entities.Food{ID: uuid.New(), FoodName: "Soup", Status: domain.FoodStatusDelivered}
	require.NoError(t, repo.AddFood(ctx, available))
	require.NoError(t, repo.AddFood(ctx, delivered))

	foods, err := service.GetFoods(ctx, domain.FoodFilter{})
	require.NoError(t, err)

	require.Len(t, foods, 1)
	assert.Equal(t, "Bread", foods[0].FoodName)
}

func TestAddFoodRejectsBadExpiryDate(t *testing.T) {
	service := NewFoodService(newFakeFoodRepository(), &fakeCascadeRepository{}, nil)

	req := addFoodFixture()
	req.ExpiredAt = "tomorrow-ish"

	_, err := service.AddFood(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestEditFoodNotFound(t *testing.T) {
	service := NewFoodService(newFakeFoodRepository(), &fakeCascadeRepository{}, nil)

	err := service.EditFood(context.Background(), uuid.NewString(), domain.EditFoodRequest{
		FoodName:       "Rice Box",
		FoodQuantity:   3,
		PickupLocation: "Dhanmondi",
		ExpiredAt:      "2026-10-01",
		DonorEmail:     "donor@example.com",
		DonorName:      "Donor",
		Status:         domain.FoodStatusAvailable,
	})
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestDeleteFoodCascadesToRequests(t *testing.T) {
	repo := newFakeFoodRepository()
	cascade := &fakeCascadeRepository{requestsByFood: map[string]int64{}}
	service := NewFoodService(repo, cascade, nil)
	ctx := context.Background()

	created, err := service.AddFood(ctx, addFoodFixture())
	require.NoError(t, err)
	cascade.requestsByFood[created.ID] = 3

	res, err := service.DeleteFood(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.DeletedFoods)
	assert.Equal(t, int64(3), res.DeletedRequests)
	assert.Empty(t, repo.foods)
}

func TestDeleteFoodCascadesEvenWhenFoodAlreadyGone(t *testing.T) {
	cascade := &fakeCascadeRepository{requestsByFood: map[string]int64{"ghost": 2}}
	service := NewFoodService(newFakeFoodRepository(), cascade, nil)

	res, err := service.DeleteFood(context.Background(), "ghost")
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.DeletedFoods)
	assert.Equal(t, int64(2), res.DeletedRequests)
	assert.Equal(t, []string{"ghost"}, cascade.deleteCalls)
}

func TestUploadFoodImageWritesPublicLink(t *testing.T) {
	repo := newFakeFoodRepository()
	s3 := &stubS3{uploaded: map[string]string{}}
	service := NewFoodService(repo, &fakeCascadeRepository{}, s3)
	ctx := context.Background()

	created, err := service.AddFood(ctx, addFoodFixture())
	require.NoError(t, err)

	header := &multipart.FileHeader{
		Filename: "rice.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}

	res, err := service.UploadFoodImage(ctx, domain.UploadFoodImageRequest{FoodID: created.ID, Image: header})
	require.NoError(t, err)

	assert.Contains(t, res.ImageURL, "foods/food-"+created.ID)
	assert.Equal(t, res.ImageURL, repo.foods[created.ID].FoodImage)
}

func TestUploadFoodImageUnknownFood(t *testing.T) {
	service := NewFoodService(newFakeFoodRepository(), &fakeCascadeRepository{}, &stubS3{uploaded: map[string]string{}})

	_, err := service.UploadFoodImage(context.Background(), domain.UploadFoodImageRequest{
		FoodID: uuid.NewString(),
		Image:  &multipart.FileHeader{Filename: "x.jpg", Header: textproto.MIMEHeader{}},
	})
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}
