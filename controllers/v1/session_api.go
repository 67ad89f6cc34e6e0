package apiv1

import (
	"hr-pipeline/controllers"
	sessionhandler "hr-pipeline/lib/session"
	apimodels "hr-pipeline/models/api"
	sessionapimodels "hr-pipeline/models/api/session"

	"github.com/gofiber/fiber/v2"
)

type sessionApiController struct {
	controllers.BaseAPIController
	session sessionhandler.Provider
}

func InitSessionApiRouters(app fiber.Router, session sessionhandler.Provider) {
	controller := sessionApiController{session: session}
	app.Route("session", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Post("login", controller.login)
		router.Post("refresh", controller.refresh)
		router.Post("logout", controller.logout)
		router.Post("access", controller.access)
		router.Get("dashboard", controller.dashboard)
	})
}

// @Summary Текущая сессия
// @Tags Сессия
// @Description Текущая сессия
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @router /api/v1/session [get]
func (c *sessionApiController) get(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(c.session.Snapshot()))
}

// @Summary Вход
// @Tags Сессия
// @Description Сохранение токена доступа и загрузка профиля. Если профиль получить не удалось, сессия сбрасывается
// @Param	body body	 sessionapimodels.Login	true	"request body"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/session/login [post]
func (c *sessionApiController) login(ctx *fiber.Ctx) error {
	var payload sessionapimodels.Login
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.session.Login(ctx.UserContext(), payload.Token); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка входа")
	}
	view := c.session.Snapshot()
	if !view.IsAuthenticated {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("не удалось получить профиль пользователя"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Обновление профиля
// @Tags Сессия
// @Description Повторная загрузка профиля по сохранённому токену
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @router /api/v1/session/refresh [post]
func (c *sessionApiController) refresh(ctx *fiber.Ctx) error {
	c.session.FetchUser(ctx.UserContext())
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(c.session.Snapshot()))
}

// @Summary Выход
// @Tags Сессия
// @Description Выход
// @Success 200 {object} apimodels.Response
// @router /api/v1/session/logout [post]
func (c *sessionApiController) logout(ctx *fiber.Ctx) error {
	c.session.Logout()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Проверка доступа
// @Tags Сессия
// @Description Есть ли у текущей роли доступ к одной из ролей
// @Param	body body	 sessionapimodels.AccessCheck	true	"request body"
// @Success 200 {object} apimodels.Response{data=bool}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/session/access [post]
func (c *sessionApiController) access(ctx *fiber.Ctx) error {
	var payload sessionapimodels.AccessCheck
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(c.session.HasAccess(payload.Roles...)))
}

// @Summary Стартовая страница
// @Tags Сессия
// @Description Стартовая страница для роли текущего пользователя
// @Success 200 {object} apimodels.Response{data=string}
// @router /api/v1/session/dashboard [get]
func (c *sessionApiController) dashboard(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(c.session.DashboardRoute()))
}
