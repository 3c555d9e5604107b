package controllersfx

import (
	"go.uber.org/fx"

	"reactivities/internal/api/controllers"
	"reactivities/internal/services"
)

var Module = fx.Provide(
	provideActivitiesController, provideAccountsController)

func provideActivitiesController(activityService services.ActivityServiceInterface) *controllers.ActivitiesController {
	return controllers.NewActivitiesController(activityService)
}

func provideAccountsController(accountService services.AccountServiceInterface) *controllers.AccountsController {
	return controllers.NewAccountsController(accountService)
}
