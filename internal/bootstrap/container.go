package bootstrap

import (
	"template-catalog-be/internal/config"
	"template-catalog-be/internal/controller"
	"template-catalog-be/internal/pkg/logger"
	"template-catalog-be/internal/repository/unitofwork"
	"template-catalog-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TemplateController controller.ITemplateController
	FeatureController  controller.IFeatureController
	LinkController     controller.ILinkController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.App.CatalogEventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.CatalogEventsTopic, sysLogger)

	// 3. Services
	templateService := service.NewTemplateService(uowFactory, publisherService)
	featureService := service.NewFeatureService(uowFactory, publisherService)
	linkService := service.NewLinkService(uowFactory, publisherService)

	// 4. Controllers
	return &Container{
		TemplateController: controller.NewTemplateController(templateService, sysLogger),
		FeatureController:  controller.NewFeatureController(featureService, sysLogger),
		LinkController:     controller.NewLinkController(linkService, sysLogger),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
