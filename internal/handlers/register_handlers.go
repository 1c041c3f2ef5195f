package handlers

import (
	"regexp"

	"github.com/fxease/currency_exchange_app/cmd/docs"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
	"github.com/fxease/currency_exchange_app/internal/middleware"
	"github.com/fxease/currency_exchange_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// currencyCodeRe matches exactly 3 word characters, same constraint the
// route pattern enforces on source/target segments.
var currencyCodeRe = regexp.MustCompile(`^\w{3}$`)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterCurrencyCodeValidation(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Setup API v1 routes, passing service interfaces
	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return err
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))

	// Delegate route registration to specific handlers, passing required services
	RegisterCurrencyRoutes(v1, services.Currency)
	RegisterConvertRoutes(v1, services.Conversion)

	return nil
}

// RegisterCurrencyCodeValidation adds the 'currencycode' binding tag used
// by the convert path params.
func RegisterCurrencyCodeValidation() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodeRe.MatchString(fl.Field().String())
	})
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
