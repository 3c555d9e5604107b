package storesfx

import (
	"go.uber.org/fx"

	"reactivities/internal/remote"
	"reactivities/internal/stores"
	"reactivities/pkg/memstore"
)

var Module = fx.Provide(
	provideRegistry, provideTokenSink, provideUserStore,
	provideCurrentUserProvider, provideActivityStore)

func provideRegistry() memstore.ActivityRegistry {
	return memstore.NewActivityRegistry()
}

func provideTokenSink(client *remote.Client) stores.TokenSink {
	return client
}

func provideUserStore(api remote.UserAPIInterface, tokens stores.TokenSink, nav stores.Navigator) stores.UserStoreInterface {
	return stores.NewUserStore(api, tokens, nav)
}

func provideCurrentUserProvider(userStore stores.UserStoreInterface) stores.CurrentUserProvider {
	return userStore
}

func provideActivityStore(
	registry memstore.ActivityRegistry,
	api remote.ActivityAPIInterface,
	users stores.CurrentUserProvider,
	nav stores.Navigator,
	notifier stores.Notifier,
) stores.ActivityStoreInterface {
	return stores.NewActivityStore(registry, api, users, nav, notifier)
}
