package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MOTAHAR124/AI-Trip-Planner/cmd/fx/generator_fx"
	"github.com/MOTAHAR124/AI-Trip-Planner/cmd/fx/plan_fx"
	"github.com/MOTAHAR124/AI-Trip-Planner/internal/api/controllers"
	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/logger"
	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/middleware"
	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	if err := logger.Init(zapcore.InfoLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	app := fx.New(
		fx.Provide(func() *zap.Logger { return logger.Log }),
		generator_fx.Module,
		plan_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, zlog *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zlog.Info("Starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					zlog.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zlog.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(planController *controllers.PlanController, zlog *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(ginzap.Ginzap(zlog, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(zlog, true))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"X-Trace-ID"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.IdentityMiddleware())

	RegisterRoutes(r, planController)

	return r
}

func RegisterRoutes(r *gin.Engine, planController *controllers.PlanController) {
	api := r.Group("/api")
	api.POST("/plan", planController.CreatePlanHandler)
	api.GET("/healthz", controllers.HealthCheckHandler)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})
}
