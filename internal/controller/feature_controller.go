// FILE: internal/controller/feature_controller.go
// Controller for feature endpoints
package controller

import (
	"template-catalog-be/internal/dto"
	"template-catalog-be/internal/pkg/logger"
	"template-catalog-be/internal/pkg/serverutils"
	"template-catalog-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IFeatureController interface {
	RegisterRoutes(api fiber.Router)
}

type featureController struct {
	featureService service.IFeatureService
	validate       *validator.Validate
	logger         logger.ILogger
}

func NewFeatureController(featureService service.IFeatureService, sysLogger logger.ILogger) IFeatureController {
	return &featureController{
		featureService: featureService,
		validate:       validator.New(),
		logger:         sysLogger,
	}
}

func (c *featureController) RegisterRoutes(api fiber.Router) {
	api.Post("/features", c.Create)
	api.Put("/features/:id", c.Update)
	api.Delete("/features/:id", c.Delete)
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	c.logger.Info("features", "CreateFeature request", nil)

	var req dto.CreateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.featureService.Create(ctx.Context(), &req)
	if err != nil {
		c.logger.Error("features", "CreateFeature failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Feature created", res))
}

func (c *featureController) Update(ctx *fiber.Ctx) error {
	c.logger.Info("features", "UpdateFeature request", nil)

	id, err := parseId(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid feature ID"))
	}

	var req dto.UpdateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.featureService.Update(ctx.Context(), id, &req); err != nil {
		c.logger.Error("features", "UpdateFeature failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Feature updated", nil))
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	c.logger.Info("features", "DeleteFeature request", nil)

	id, err := parseId(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid feature ID"))
	}

	if err := c.featureService.Delete(ctx.Context(), id); err != nil {
		c.logger.Error("features", "DeleteFeature failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Feature deleted", nil))
}
