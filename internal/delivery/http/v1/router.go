package v1

import (
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/security"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProjectUC     domain.ProjectUsecase
	SkillUC       domain.SkillUsecase
	CertificateUC domain.CertificateUsecase
	AuthUC        domain.AuthUsecase
	ContactUC     domain.ContactUsecase
	HealthUC      usecase.HealthUsecase
	// SignInGuard defaults to the Redis-backed tracker, which is a no-op without Redis.
	SignInGuard SignInGuard
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Record bodies reject fields the entity does not have
	binding.EnableDecoderDisallowUnknownFields = true
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Configure(v)
	}

	r := gin.New()
	r.SetHTMLTemplate(PageTemplates())

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Config.GinMode)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	NewPageHandler(r, deps.ProjectUC, deps.SkillUC, deps.CertificateUC)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	api := r.Group("/api")
	api.Use(middleware.GlobalRateLimitMiddleware(deps.Config.RateLimitGlobalThreshold, window))

	NewHealthHandler(api, deps.HealthUC)

	contactLimit := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config.RateLimitContactThreshold, window))
	NewContactHandler(api, deps.ContactUC, contactLimit)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthUC))

	guard := deps.SignInGuard
	if guard == nil {
		guard = security.NewSignInTracker(security.DefaultSignInTrackerConfig())
	}
	NewAuthHandler(api, protected, deps.AuthUC, guard, deps.Config, middleware.StrictRateLimitMiddleware())
	NewProjectHandler(api, protected, deps.ProjectUC)
	NewSkillHandler(api, protected, deps.SkillUC)
	NewCertificateHandler(api, protected, deps.CertificateUC)

	return r
}
