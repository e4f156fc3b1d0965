package handlers

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/internal/api/presenters"
	"UnityPlate-Backend/pkg/food"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		EditFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.foodService.AddFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "500"))
	if err != nil || limit < 1 {
		limit = 500
	}

	filter := domain.FoodFilter{
		ID:         c.Query("id"),
		DonorEmail: c.Query("email"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		Limit:      limit,
	}

	foods, err := h.foodService.GetFoods(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) EditFood(c *fiber.Ctx) error {
	foodID := c.Params("food_id")
	req := new(domain.EditFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditFood, err)
	}

	if err := h.foodService.EditFood(c.Context(), foodID, *req); err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedEditFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEditFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	foodID := c.Params("food_id")

	res, err := h.foodService.DeleteFood(c.Context(), foodID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	req := new(domain.UploadFoodImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
	}

	res, err := h.foodService.UploadFoodImage(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadFoodImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadFoodImage)
}
