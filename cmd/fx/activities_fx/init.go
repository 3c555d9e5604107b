package activitiesfx

import (
	"go.uber.org/fx"

	"reactivities/internal/repositories"
	"reactivities/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, provideActivityService)

func provideActivityRepo() repositories.ActivityRepositoryInterface {
	return repositories.NewActivityRepository()
}

func provideActivityService(activityRepo repositories.ActivityRepositoryInterface) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo)
}
