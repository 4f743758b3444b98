package v1

import (
	"net/http"

	"github.com/YashPro8158/credifybackend/config"
	"github.com/YashPro8158/credifybackend/internal/delivery/http/middleware"
	"github.com/YashPro8158/credifybackend/internal/delivery/http/response"
	"github.com/YashPro8158/credifybackend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	CareerUC  domain.CareerUsecase
	LoanUC    domain.LoanUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware(deps.Config))

	// Liveness banner
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Credify backend is running")
	})

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Form submission routes get a tighter per-IP budget than the
	// global limit; each request ends in an outbound email.
	submit := api.Group("")
	submit.Use(middleware.SubmitRateLimitMiddleware(deps.Config))
	{
		NewContactHandler(submit, deps.ContactUC)
		NewCareerHandler(submit, deps.CareerUC, deps.Config.ResumeRequired)
		NewLoanHandler(submit, deps.LoanUC)
	}

	return r
}
