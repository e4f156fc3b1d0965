package handlers

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/internal/api/presenters"
	"UnityPlate-Backend/pkg/jwt"
	"UnityPlate-Backend/pkg/user"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		UpsertUser(c *fiber.Ctx) error
		GetUser(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
		jwtService  jwt.JWTService
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate, jwtService jwt.JWTService) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
		jwtService:  jwtService,
	}
}

// UpsertUser issues or refreshes the identity and its credential. The
// ?update flag widens the mutation to the avatar. The token is delivered
// only through the cookie, never in the body.
func (h *userHandler) UpsertUser(c *fiber.Ctx) error {
	req := new(domain.UpsertUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertUser, err)
	}

	fullUpdate := c.Query("update") != ""

	res, err := h.userService.UpsertUser(c.Context(), *req, fullUpdate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertUser, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     domain.CookieAccessToken,
		Value:    h.jwtService.GenerateAccessToken(req.Email),
		Expires:  time.Now().Add(time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpsertUser)
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	email := c.Params("email")

	res, err := h.userService.GetUserByEmail(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}
