// FILE: internal/controller/link_controller.go
// Controller for link endpoints and the template-features join
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

type ILinkController interface {
	RegisterRoutes(api fiber.Router)
}

type linkController struct {
	linkService service.ILinkService
	validate    *validator.Validate
	logger      logger.ILogger
}

func NewLinkController(linkService service.ILinkService, sysLogger logger.ILogger) ILinkController {
	return &linkController{
		linkService: linkService,
		validate:    validator.New(),
		logger:      sysLogger,
	}
}

func (c *linkController) RegisterRoutes(api fiber.Router) {
	api.Post("/links", c.Create)
	api.Put("/links/:id", c.Update)
	// Links are addressed by their natural (feature, template) pair.
	api.Delete("/links", c.Delete)
	api.Get("/templates/:id/features", c.GetFeaturesByTemplateId)
}

func (c *linkController) Create(ctx *fiber.Ctx) error {
	c.logger.Info("links", "CreateLink request", nil)

	var req dto.CreateLinkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.linkService.Create(ctx.Context(), &req)
	if err != nil {
		c.logger.Error("links", "CreateLink failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	if res.Id == nil {
		return ctx.JSON(serverutils.SuccessResponse("Link already exists", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Link created", res))
}

func (c *linkController) Update(ctx *fiber.Ctx) error {
	c.logger.Info("links", "UpdateLink request", nil)

	id, err := parseId(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid link ID"))
	}

	var req dto.UpdateLinkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.linkService.Update(ctx.Context(), id, &req); err != nil {
		c.logger.Error("links", "UpdateLink failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Link updated", nil))
}

func (c *linkController) Delete(ctx *fiber.Ctx) error {
	c.logger.Info("links", "DeleteLink request", nil)

	featureId, err := strconv.ParseUint(ctx.Query("feature_id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid feature_id"))
	}
	templateId, err := strconv.ParseUint(ctx.Query("template_id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid template_id"))
	}

	if err := c.linkService.Delete(ctx.Context(), featureId, templateId); err != nil {
		c.logger.Error("links", "DeleteLink failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Link deleted", nil))
}

func (c *linkController) GetFeaturesByTemplateId(ctx *fiber.Ctx) error {
	c.logger.Info("links", "GetFeaturesByTemplateId request", nil)

	id, err := parseId(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid template ID"))
	}

	res, err := c.linkService.GetFeaturesByTemplateId(ctx.Context(), id)
	if err != nil {
		c.logger.Error("links", "GetFeaturesByTemplateId failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Template features retrieved", res))
}
