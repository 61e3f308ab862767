package routes

import (
	"customer-portal/config"
	"customer-portal/controllers"
	"customer-portal/libs"
	"customer-portal/middleware"
	"customer-portal/orderlist"
	"customer-portal/repositories"
	"customer-portal/services"
	"customer-portal/views"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handlers struct {
	Dashboard *controllers.DashboardController
	Orders    *controllers.OrdersController
	JWTSecret string
	UploadDir string
}

// NewHandlers wires the controllers to the backend services. Avatar upload
// prefers Cloudinary and falls back to local files; support email is
// disabled when SMTP is not configured.
func NewHandlers(cfg *config.Config, logger *zap.Logger, rdb *redis.Client) (Handlers, error) {
	states := repositories.NewViewStateRepository(rdb, cfg.ViewStateTTL)
	profiles := services.NewProfileService(cfg.ProfileServiceURL, cfg.ServiceTimeout)
	orders := services.NewCustomerOrdersService(cfg.OrdersServiceURL, cfg.ServiceTimeout)

	var uploader controllers.AvatarUploader
	cld, err := libs.NewCloudinaryUploader(libs.CloudinaryCredentials{
		URL:       cfg.CloudinaryURL,
		CloudName: cfg.CloudinaryName,
		APIKey:    cfg.CloudinaryKey,
		APISecret: cfg.CloudinarySecret,
	})
	if err == nil {
		uploader = cld
	} else {
		logger.Info("Cloudinary unavailable, storing avatars locally", zap.Error(err))
		local, err := libs.NewLocalUploader(cfg.UploadDir, "/uploads")
		if err != nil {
			return Handlers{}, fmt.Errorf("local uploads: %w", err)
		}
		uploader = local
	}

	var mailer controllers.SupportMailer
	email, err := services.NewEmailService(services.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, cfg.SupportEmail)
	if err != nil {
		logger.Warn("Support email disabled", zap.Error(err))
	} else {
		mailer = email
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.IsProduction()
	store.Options.SameSite = http.SameSiteLaxMode

	return Handlers{
		Dashboard: controllers.NewDashboardController(controllers.DashboardOptions{
			Profiles:      profiles,
			Orders:        orders,
			Uploader:      uploader,
			Mailer:        mailer,
			States:        states,
			Zone:          cfg.Location(),
			MaxUploadSize: cfg.MaxUploadSize,
			Logger:        logger,
		}),
		Orders:    controllers.NewOrdersController(orders, states, store, orderlist.New(cfg.Location()), logger),
		JWTSecret: cfg.JWTSecret,
		UploadDir: cfg.UploadDir,
	}, nil
}

// NewRouter builds the engine with the page renderer and the middleware
// chain every entry point shares.
func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) (*gin.Engine, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.HTMLRender = renderer
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	SetupRoutes(router, h)
	return router, nil
}
