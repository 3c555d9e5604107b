package accountsfx

import (
	"go.uber.org/fx"

	"reactivities/internal/repositories"
	"reactivities/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo() repositories.AccountRepositoryInterface {
	return repositories.NewAccountRepository()
}

func provideAccountService(accountRepo repositories.AccountRepositoryInterface) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
