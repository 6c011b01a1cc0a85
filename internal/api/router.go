package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/HeleenBonte/GardeningAppDeploy/docs"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/api/handler"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/api/middleware"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/service"
	mongodb "github.com/HeleenBonte/GardeningAppDeploy/internal/infrastructure/db/mongo"
	redisdb "github.com/HeleenBonte/GardeningAppDeploy/internal/infrastructure/db/redis"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/infrastructure/http/handlers"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("gardening"))
	e.Use(middleware.Authenticate(tokens, log))
	e.Use(accessRules().Enforce())

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	cropRepo := redisdb.NewCropCache(mongodb.NewCropRepository(db), rdb, log)
	recipeRepo := redisdb.NewRecipeCache(mongodb.NewRecipeRepository(db), rdb, log)
	ingredientRepo := mongodb.NewIngredientRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	measurementRepo := mongodb.NewMeasurementRepository(db)

	// --- Services ---
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher, tokens)
	cropService := service.NewCropService(cropRepo)
	recipeService := service.NewRecipeService(recipeRepo)
	ingredientService := service.NewIngredientService(ingredientRepo, cropRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	courseService := service.NewCourseService(courseRepo)
	measurementService := service.NewMeasurementService(measurementRepo)
	userService := service.NewUserService(userRepo, cropRepo, recipeRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	cropHandler := handler.NewCropHandler(cropService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	courseHandler := handler.NewCourseHandler(courseService)
	measurementHandler := handler.NewMeasurementHandler(measurementService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler(db, rdb)

	// --- Auth ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Crops ---
	e.GET("/api/crops", cropHandler.List)
	e.GET("/api/crops/search", cropHandler.Search)
	e.GET("/api/crops/:id", cropHandler.Get)
	e.POST("/api/crops", cropHandler.Create)
	e.PUT("/api/crops/:id", cropHandler.Update)
	e.DELETE("/api/crops/:id", cropHandler.Delete)

	// --- Recipes ---
	e.GET("/api/recipes", recipeHandler.List)
	e.GET("/api/recipes/category/:catId", recipeHandler.ListByCategory)
	e.GET("/api/recipes/course/:courseId", recipeHandler.ListByCourse)
	e.GET("/api/recipes/ingredient/:ingrId", recipeHandler.ListByIngredient)
	e.GET("/api/recipes/:id", recipeHandler.Get)
	e.POST("/api/recipes", recipeHandler.Create)
	e.PUT("/api/recipes/:id", recipeHandler.Update)
	e.DELETE("/api/recipes/:id", recipeHandler.Delete)

	// --- Ingredients ---
	e.GET("/api/ingredients", ingredientHandler.List)
	e.GET("/api/ingredients/:id", ingredientHandler.Get)
	e.POST("/api/ingredients", ingredientHandler.Create)
	e.PUT("/api/ingredients/:id", ingredientHandler.Update)
	e.DELETE("/api/ingredients/:id", ingredientHandler.Delete)

	// --- Categories / Courses / Measurements ---
	e.GET("/api/categories", categoryHandler.List)
	e.GET("/api/categories/:id", categoryHandler.Get)
	e.POST("/api/categories", categoryHandler.Create)
	e.DELETE("/api/categories/:id", categoryHandler.Delete)

	e.GET("/api/courses", courseHandler.List)
	e.GET("/api/courses/:id", courseHandler.Get)
	e.POST("/api/courses", courseHandler.Create)
	e.DELETE("/api/courses/:id", courseHandler.Delete)

	e.GET("/api/measurements", measurementHandler.List)
	e.GET("/api/measurements/:id", measurementHandler.Get)
	e.POST("/api/measurements", measurementHandler.Create)
	e.DELETE("/api/measurements/:id", measurementHandler.Delete)

	// --- Users & favorites ---
	e.GET("/api/users", userHandler.List)
	e.GET("/api/users/:id", userHandler.Get)
	e.PUT("/api/users/:id", userHandler.Update)
	e.DELETE("/api/users/:id", userHandler.Delete)
	e.GET("/api/users/:id/favorite-crops", userHandler.ListFavoriteCrops)
	e.POST("/api/users/:id/favorite-crops/:cropId", userHandler.AddFavoriteCrop)
	e.DELETE("/api/users/:id/favorite-crops/:cropId", userHandler.RemoveFavoriteCrop)
	e.GET("/api/users/:id/favorite-recipes", userHandler.ListFavoriteRecipes)
	e.POST("/api/users/:id/favorite-recipes/:recipeId", userHandler.AddFavoriteRecipe)
	e.DELETE("/api/users/:id/favorite-recipes/:recipeId", userHandler.RemoveFavoriteRecipe)

	// --- Health probes, metrics, docs ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// accessRules declares the authorization table. Order matters: the
// first matching rule wins, so the public read rules must precede the
// role-guarded write rules for the same resources.
func accessRules() *middleware.RuleTable {
	user := domain.RoleUser
	admin := domain.RoleAdmin

	return middleware.NewRuleTable(
		middleware.Rule{Method: middleware.MethodAny, Pattern: "/api/auth/**", Require: middleware.PermitAll()},

		middleware.Rule{Method: "GET", Pattern: "/health/**", Require: middleware.PermitAll()},
		middleware.Rule{Method: "GET", Pattern: "/metrics", Require: middleware.PermitAll()},
		middleware.Rule{Method: "GET", Pattern: "/swagger/**", Require: middleware.PermitAll()},

		middleware.Rule{Method: "GET", Pattern: "/api/recipes/**", Require: middleware.PermitAll()},
		middleware.Rule{Method: "GET", Pattern: "/api/crops/**", Require: middleware.PermitAll()},
		middleware.Rule{Method: "GET", Pattern: "/api/ingredients/**", Require: middleware.PermitAll()},

		middleware.Rule{Method: "POST", Pattern: "/api/recipes/**", Require: middleware.HasAnyRole(user, admin)},
		middleware.Rule{Method: "PUT", Pattern: "/api/recipes/**", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "PATCH", Pattern: "/api/recipes/**", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "DELETE", Pattern: "/api/recipes/**", Require: middleware.HasAnyRole(admin)},

		middleware.Rule{Method: "POST", Pattern: "/api/crops/**", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "PUT", Pattern: "/api/crops/**", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "PATCH", Pattern: "/api/crops/**", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "DELETE", Pattern: "/api/crops/**", Require: middleware.HasAnyRole(admin)},

		middleware.Rule{Method: "POST", Pattern: "/api/ingredients/**", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "PUT", Pattern: "/api/ingredients/**", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "PATCH", Pattern: "/api/ingredients/**", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "DELETE", Pattern: "/api/ingredients/**", Require: middleware.HasAnyRole(admin)},

		middleware.Rule{Method: "GET", Pattern: "/api/users/*/favorite-crops/**", Require: middleware.HasAnyRole(user, admin)},
		middleware.Rule{Method: "POST", Pattern: "/api/users/*/favorite-crops/**", Require: middleware.HasAnyRole(user, admin)},
		middleware.Rule{Method: "DELETE", Pattern: "/api/users/*/favorite-crops/**", Require: middleware.HasAnyRole(user, admin)},
		middleware.Rule{Method: "GET", Pattern: "/api/users/*/favorite-recipes/**", Require: middleware.HasAnyRole(user, admin)},
		middleware.Rule{Method: "POST", Pattern: "/api/users/*/favorite-recipes/**", Require: middleware.HasAnyRole(user, admin)},
		middleware.Rule{Method: "DELETE", Pattern: "/api/users/*/favorite-recipes/**", Require: middleware.HasAnyRole(user, admin)},

		middleware.Rule{Method: "GET", Pattern: "/api/users", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "POST", Pattern: "/api/users/**", Require: middleware.HasAnyRole(admin)},
		middleware.Rule{Method: "PUT", Pattern: "/api/users/**", Require: middleware.HasAnyRole(user, admin)},
		middleware.Rule{Method: "PATCH", Pattern: "/api/users/**", Require: middleware.HasAnyRole(user, admin)},
		middleware.Rule{Method: "DELETE", Pattern: "/api/users/**", Require: middleware.HasAnyRole(user, admin)},
		middleware.Rule{Method: "GET", Pattern: "/api/users/*", Require: middleware.HasAnyRole(user, admin)},

		middleware.Rule{Method: middleware.MethodAny, Pattern: "/api/measurements/**", Require: middleware.HasAnyRole(user, admin)},
	)
}
