package apiv1

import (
	"hr-pipeline/controllers"
	"hr-pipeline/lib/navigation"
	sessionhandler "hr-pipeline/lib/session"
	apimodels "hr-pipeline/models/api"

	"github.com/gofiber/fiber/v2"
)

type navigationApiController struct {
	controllers.BaseAPIController
	navigation navigation.Provider
	session    sessionhandler.Provider
}

func InitNavigationApiRouters(app fiber.Router, nav navigation.Provider, session sessionhandler.Provider) {
	controller := navigationApiController{
		navigation: nav,
		session:    session,
	}
	app.Route("navigation", func(router fiber.Router) {
		router.Get("menu", controller.menu)
		router.Get("resolve", controller.resolve)
	})
}

// @Summary Меню
// @Tags Навигация
// @Description Экраны, доступные текущему пользователю
// @Success 200 {object} apimodels.Response{data=[]sessionapimodels.RouteView}
// @router /api/v1/navigation/menu [get]
func (c *navigationApiController) menu(ctx *fiber.Ctx) error {
	menu := navigation.ToView(c.navigation.MenuFor(c.session))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(menu, len(menu)))
}

// @Summary Проверка перехода
// @Tags Навигация
// @Description Можно ли открыть экран и куда перенаправить, если нельзя
// @Param   path	query    string	true	"путь экрана"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.ResolveResult}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/navigation/resolve [get]
func (c *navigationApiController) resolve(ctx *fiber.Ctx) error {
	path := ctx.Query("path")
	if path == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан путь"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(c.navigation.Resolve(path, c.session)))
}
