package handlers

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/internal/api/presenters"
	"UnityPlate-Backend/pkg/fulfillment"

	"github.com/gofiber/fiber/v2"
)

type (
	FulfillmentHandler interface {
		ConfirmRequest(c *fiber.Ctx) error
	}

	fulfillmentHandler struct {
		fulfillmentService fulfillment.FulfillmentService
	}
)

func NewFulfillmentHandler(fulfillmentService fulfillment.FulfillmentService) FulfillmentHandler {
	return &fulfillmentHandler{fulfillmentService: fulfillmentService}
}

func (h *fulfillmentHandler) ConfirmRequest(c *fiber.Ctx) error {
	requestID := c.Params("request_id")
	foodID := c.Params("food_id")

	res, err := h.fulfillmentService.ConfirmRequest(c.Context(), requestID, foodID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedConfirmRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConfirmRequest)
}
