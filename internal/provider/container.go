package provider

import (
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/config"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/logger"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/queue"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/repository"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/service"
)

// Container dependency injection container
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo        repository.AdminRepository
	NewsRepo         repository.NewsRepository
	EventRepo        repository.EventRepository
	MuseumRepo       repository.MuseumRepository
	PageRepo         repository.PageRepository
	PageCategoryRepo repository.PageCategoryRepository
	SettingRepo      repository.SettingRepository

	// Services
	AuthService         *service.AuthService
	CaptchaService      *service.CaptchaService
	UploadService       *service.UploadService
	NewsService         *service.NewsService
	EventService        *service.EventService
	MuseumService       *service.MuseumService
	PageService         *service.PageService
	PageCategoryService *service.PageCategoryService
	SettingService      *service.SettingService
}

// NewContainer initializes the container
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.NewsRepo = repository.NewNewsRepository(db)
	c.EventRepo = repository.NewEventRepository(db)
	c.MuseumRepo = repository.NewMuseumRepository(db)
	c.PageRepo = repository.NewPageRepository(db)
	c.PageCategoryRepo = repository.NewPageCategoryRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
}

func (c *Container) initServices() {
	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UploadService = service.NewUploadService(c.Config)
	c.NewsService = service.NewNewsService(c.NewsRepo, c.QueueClient)
	c.EventService = service.NewEventService(c.EventRepo, c.QueueClient)
	c.MuseumService = service.NewMuseumService(c.MuseumRepo, c.QueueClient)
	c.PageService = service.NewPageService(c.PageRepo, c.PageCategoryRepo)
	c.PageCategoryService = service.NewPageCategoryService(c.PageCategoryRepo, c.PageRepo)
}
