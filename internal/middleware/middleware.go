package middleware

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/internal/api/presenters"
	"UnityPlate-Backend/internal/utils"
	"UnityPlate-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	origins := utils.GetConfig("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "https://unity-plate.web.app, http://localhost:5173"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
	})
}

// AuthMiddleware is the identity gate for protected routes. The credential
// travels only in the access_token cookie: a missing cookie is 403, a bad
// or expired signature is 401, and on success the decoded email lands in
// the request locals. No store lookup happens here.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(domain.CookieAccessToken)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		email, err := jwtService.GetEmailByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("email", email)
		return c.Next()
	}
}
