package apiv1

import (
	"fmt"
	"hr-pipeline/controllers"
	pdfexport "hr-pipeline/lib/export/pdf"
	xlsexport "hr-pipeline/lib/export/xls"
	pipelinehandler "hr-pipeline/lib/pipeline"
	"hr-pipeline/middleware"
	"hr-pipeline/models"
	apimodels "hr-pipeline/models/api"
	pipelineapimodels "hr-pipeline/models/api/pipeline"
	"time"

	"github.com/gofiber/fiber/v2"
)

type pipelineApiController struct {
	controllers.BaseAPIController
	pipeline pipelinehandler.Provider
	xls      xlsexport.Provider
}

func InitPipelineApiRouters(app fiber.Router, pipeline pipelinehandler.Provider, session middleware.Session, xls xlsexport.Provider) {
	controller := pipelineApiController{
		pipeline: pipeline,
		xls:      xls,
	}
	readRequired := middleware.RoleRequired(session, models.PipelineReadRoles...)
	writeRequired := middleware.RoleRequired(session, models.PipelineWriteRoles...)
	app.Route("pipeline", func(router fiber.Router) {
		router.Use(middleware.SessionRequired(session))

		router.Get("stages", readRequired, controller.stages)
		router.Get("staff", readRequired, controller.staff)
		router.Get("board", readRequired, controller.board)
		router.Get("stage/:stage_id", readRequired, controller.byStage)
		router.Get("export/xlsx", readRequired, controller.exportXlsx)
		router.Route("candidates", func(listRoute fiber.Router) {
			listRoute.Get("", readRequired, controller.list)
			listRoute.Get("new", readRequired, controller.listNew)
			listRoute.Get("shortlisted", readRequired, controller.listShortlisted)
			listRoute.Get("rejected", readRequired, controller.listRejected)
			listRoute.Route(":id", func(idRoute fiber.Router) {
				idRoute.Get("", readRequired, controller.get)
				idRoute.Get("scorecard.pdf", readRequired, controller.scorecard)
				idRoute.Put("shortlist", writeRequired, controller.shortlist)
				idRoute.Put("reject", writeRequired, controller.reject)
				idRoute.Put("interviewer", writeRequired, controller.assignInterviewer)
				idRoute.Put("result", writeRequired, controller.setResult)
			})
		})
	})
}

// @Summary Этапы воронки
// @Tags Воронка
// @Description Упорядоченный список этапов
// @Success 200 {object} apimodels.Response{data=[]models.PipelineStage}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/pipeline/stages [get]
func (c *pipelineApiController) stages(ctx *fiber.Ctx) error {
	list := c.pipeline.Stages()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, len(list)))
}

// @Summary Сотрудники региональных офисов
// @Tags Воронка
// @Description Справочник сотрудников HO
// @Success 200 {object} apimodels.Response{data=[]models.StaffRecord}
// @router /api/v1/pipeline/staff [get]
func (c *pipelineApiController) staff(ctx *fiber.Ctx) error {
	list := c.pipeline.Staff()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, len(list)))
}

// @Summary Канбан доска
// @Tags Воронка
// @Description Новые, отклонённые и кандидаты по колонкам этапов
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.Board}
// @router /api/v1/pipeline/board [get]
func (c *pipelineApiController) board(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(c.pipeline.Board()))
}

// @Summary Кандидаты на этапе
// @Tags Воронка
// @Description Кандидаты со статусом stage_id
// @Param   stage_id	path    string	true	"идентификатор этапа"
// @Success 200 {object} apimodels.Response{data=[]models.Candidate}
// @router /api/v1/pipeline/stage/{stage_id} [get]
func (c *pipelineApiController) byStage(ctx *fiber.Ctx) error {
	list := c.pipeline.CandidatesByStage(models.StageID(ctx.Params("stage_id")))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, len(list)))
}

// @Summary Список кандидатов
// @Tags Воронка
// @Description Все кандидаты каталога
// @Success 200 {object} apimodels.Response{data=[]models.Candidate}
// @router /api/v1/pipeline/candidates [get]
func (c *pipelineApiController) list(ctx *fiber.Ctx) error {
	list := c.pipeline.Candidates()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, len(list)))
}

// @Summary Новые кандидаты
// @Tags Воронка
// @Success 200 {object} apimodels.Response{data=[]models.Candidate}
// @router /api/v1/pipeline/candidates/new [get]
func (c *pipelineApiController) listNew(ctx *fiber.Ctx) error {
	list := c.pipeline.NewCandidates()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, len(list)))
}

// @Summary Кандидаты в шорт-листе
// @Tags Воронка
// @Success 200 {object} apimodels.Response{data=[]models.Candidate}
// @router /api/v1/pipeline/candidates/shortlisted [get]
func (c *pipelineApiController) listShortlisted(ctx *fiber.Ctx) error {
	list := c.pipeline.ShortlistedCandidates()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, len(list)))
}

// @Summary Отклонённые кандидаты
// @Tags Воронка
// @Success 200 {object} apimodels.Response{data=[]models.Candidate}
// @router /api/v1/pipeline/candidates/rejected [get]
func (c *pipelineApiController) listRejected(ctx *fiber.Ctx) error {
	list := c.pipeline.RejectedCandidates()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, len(list)))
}

// @Summary Кандидат
// @Tags Воронка
// @Param   id	path    int	true	"идентификатор кандидата"
// @Success 200 {object} apimodels.Response{data=models.Candidate}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/pipeline/candidates/{id} [get]
func (c *pipelineApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, found := c.pipeline.Candidate(id)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("кандидат не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary В шорт-лист
// @Tags Воронка
// @Description Перевод кандидата в статус shortlisted. Неизвестный кандидат не считается ошибкой: applied=false
// @Param   id	path    int	true	"идентификатор кандидата"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.MutationResult}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/pipeline/candidates/{id}/shortlist [put]
func (c *pipelineApiController) shortlist(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, applied := c.pipeline.ShortlistCandidate(id)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(mutationResult(rec, applied)))
}

// @Summary Отклонить
// @Tags Воронка
// @Description Перевод кандидата в статус rejected. Неизвестный кандидат не считается ошибкой: applied=false
// @Param   id	path    int	true	"идентификатор кандидата"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.MutationResult}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/pipeline/candidates/{id}/reject [put]
func (c *pipelineApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, applied := c.pipeline.RejectCandidate(id)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(mutationResult(rec, applied)))
}

// @Summary Назначить интервьюера
// @Tags Воронка
// @Param   id	path    int	true	"идентификатор кандидата"
// @Param	body body	 pipelineapimodels.AssignInterviewer	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.MutationResult}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/pipeline/candidates/{id}/interviewer [put]
func (c *pipelineApiController) assignInterviewer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.AssignInterviewer
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, applied := c.pipeline.AssignInterviewer(id, payload.Name)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(mutationResult(rec, applied)))
}

// @Summary Результат собеседования
// @Tags Воронка
// @Description Сохранение результата этапа. pass переводит кандидата на следующий этап, fail оставляет на текущем.
// @Description Результат, отличный от pass/fail, игнорируется: applied=false
// @Param   id	path    int	true	"идентификатор кандидата"
// @Param	body body	 pipelineapimodels.InterviewResult	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.MutationResult}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/pipeline/candidates/{id}/result [put]
func (c *pipelineApiController) setResult(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.InterviewResult
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, applied := c.pipeline.SetInterviewResult(id, payload.StageID, payload.Result)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(mutationResult(rec, applied)))
}

// @Summary Выгрузка в Excel
// @Tags Воронка
// @Description Выгрузка всех кандидатов в xlsx
// @Success 200 {file} file
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/export/xlsx [get]
func (c *pipelineApiController) exportXlsx(ctx *fiber.Ctx) error {
	buffer, err := c.xls.ExportCandidateList(c.pipeline.Candidates(), c.pipeline.Stages())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки кандидатов")
	}
	fileName := fmt.Sprintf("pipeline_%v.xlsx", time.Now().Format("2006_01_02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%v", fileName))
	return ctx.Status(fiber.StatusOK).Send(buffer.Bytes())
}

// @Summary Оценочный лист
// @Tags Воронка
// @Description Оценочный лист кандидата в pdf
// @Param   id	path    int	true	"идентификатор кандидата"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/candidates/{id}/scorecard.pdf [get]
func (c *pipelineApiController) scorecard(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, found := c.pipeline.Candidate(id)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("кандидат не найден"))
	}
	body, err := pdfexport.GenerateScorecard(rec, c.pipeline.Stages())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("candidate_id", id), err, "Ошибка формирования оценочного листа")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=scorecard_%v.pdf", id))
	return ctx.Status(fiber.StatusOK).Send(body)
}

func mutationResult(rec models.Candidate, applied bool) pipelineapimodels.MutationResult {
	result := pipelineapimodels.MutationResult{Applied: applied}
	if applied {
		result.Candidate = &rec
	}
	return result
}
