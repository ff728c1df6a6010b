// FILE: internal/controller/template_controller.go
// Controller for template endpoints
package controller

import (
	"strconv"

	"template-catalog-be/internal/dto"
	"template-catalog-be/internal/pkg/logger"
	"template-catalog-be/internal/pkg/serverutils"
	"template-catalog-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ITemplateController interface {
	RegisterRoutes(api fiber.Router)
}

type templateController struct {
	templateService service.ITemplateService
	validate        *validator.Validate
	logger          logger.ILogger
}

func NewTemplateController(templateService service.ITemplateService, sysLogger logger.ILogger) ITemplateController {
	return &templateController{
		templateService: templateService,
		validate:        validator.New(),
		logger:          sysLogger,
	}
}

func (c *templateController) RegisterRoutes(api fiber.Router) {
	api.Post("/templates", c.Create)
	api.Put("/templates/:id", c.Update)
	api.Delete("/templates/:id", c.Delete)
	api.Get("/templates", c.GetAll)
}

func parseId(ctx *fiber.Ctx, name string) (uint64, error) {
	return strconv.ParseUint(ctx.Params(name), 10, 64)
}

func (c *templateController) Create(ctx *fiber.Ctx) error {
	c.logger.Info("templates", "CreateTemplate request", nil)

	var req dto.CreateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.templateService.Create(ctx.Context(), &req)
	if err != nil {
		c.logger.Error("templates", "CreateTemplate failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Template created", res))
}

func (c *templateController) Update(ctx *fiber.Ctx) error {
	c.logger.Info("templates", "UpdateTemplate request", nil)

	id, err := parseId(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid template ID"))
	}

	var req dto.UpdateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.templateService.Update(ctx.Context(), id, &req); err != nil {
		c.logger.Error("templates", "UpdateTemplate failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Template updated", nil))
}

func (c *templateController) Delete(ctx *fiber.Ctx) error {
	c.logger.Info("templates", "DeleteTemplate request", nil)

	id, err := parseId(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid template ID"))
	}

	if err := c.templateService.Delete(ctx.Context(), id); err != nil {
		c.logger.Error("templates", "DeleteTemplate failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Template deleted", nil))
}

func (c *templateController) GetAll(ctx *fiber.Ctx) error {
	c.logger.Info("templates", "GetAllTemplates request", nil)

	res, err := c.templateService.GetAll(ctx.Context())
	if err != nil {
		c.logger.Error("templates", "GetAllTemplates failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Templates retrieved", res))
}
