package middleware

import (
	apimodels "hr-pipeline/models/api"

	"github.com/gofiber/fiber/v2"
)

// Session - проверки сессии, которые нужны middleware
type Session interface {
	IsAuthenticated() bool
	HasAccess(requiredRoles ...string) bool
}

func SessionRequired(session Session) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !session.IsAuthenticated() {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		}
		return ctx.Next()
	}
}

func RoleRequired(session Session, roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !session.HasAccess(roles...) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
