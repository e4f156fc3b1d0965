package handlers

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/internal/api/presenters"
	"UnityPlate-Backend/pkg/request"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		AddRequest(c *fiber.Ctx) error
		GetRequests(c *fiber.Ctx) error
		CancelRequest(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) AddRequest(c *fiber.Ctx) error {
	req := new(domain.AddRequestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRequest, err)
	}

	res, err := h.requestService.AddRequest(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRequest, err)
	}

	// a duplicate is a success-shaped outcome, not an error
	if res.AlreadyRequested {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddRequest)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddRequest)
}

func (h *requestHandler) GetRequests(c *fiber.Ctx) error {
	filter := domain.RequestFilter{
		Requester: c.Query("requester"),
		Donor:     c.Query("donor"),
		ID:        c.Query("id"),
	}

	requests, err := h.requestService.GetRequests(c.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFilter) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) CancelRequest(c *fiber.Ctx) error {
	requestID := c.Params("request_id")

	res, err := h.requestService.CancelRequest(c.Context(), requestID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCancelRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCancelRequest)
}
