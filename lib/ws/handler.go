package ws

import (
	wsclient "hr-pipeline/lib/ws/client"
	connectionhub "hr-pipeline/lib/ws/hub/connection-hub"
	"hr-pipeline/middleware"
	"hr-pipeline/models"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// InitWs - события доски подбора, доступны тем же ролям, что и чтение воронки
func InitWs(app fiber.Router, hub connectionhub.Provider, session middleware.Session) {
	app.Use(middleware.SessionRequired(session))
	app.Use(middleware.RoleRequired(session, models.PipelineReadRoles...))
	app.Use("", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/", websocket.New(func(c *websocket.Conn) {
		sessionID := hub.AddClient(c)
		defer hub.DeleteClient(sessionID)
		wsclient.NewClient(sessionID, c).Dispatch()
	}))
}
