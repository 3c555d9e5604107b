package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	accountsfx "reactivities/cmd/fx/accounts_fx"
	activitiesfx "reactivities/cmd/fx/activities_fx"
	controllersfx "reactivities/cmd/fx/controllers_fx"
	"reactivities/internal/api/controllers"
	"reactivities/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		accountsfx.Module,
		activitiesfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	activitiesController *controllers.ActivitiesController,
	accountsController *controllers.AccountsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, activitiesController, accountsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	activitiesController *controllers.ActivitiesController,
	accountsController *controllers.AccountsController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountsController.Register)
	accounts.POST("/login", accountsController.Login)

	r.GET("/user", middleware.JWTAuthMiddleware(), accountsController.CurrentUser)

	activities := r.Group("/activities")
	activities.GET("", activitiesController.ListActivities)
	activities.GET("/:id", activitiesController.GetActivity)

	mutations := activities.Group("", middleware.JWTAuthMiddleware())
	mutations.POST("", activitiesController.CreateActivity)
	mutations.PUT("/:id", activitiesController.UpdateActivity)
	mutations.DELETE("/:id", activitiesController.DeleteActivity)
	mutations.POST("/:id/attend", activitiesController.Attend)
	mutations.DELETE("/:id/attend", activitiesController.Unattend)
}
