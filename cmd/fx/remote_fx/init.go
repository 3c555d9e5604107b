package remotefx

import (
	"os"

	"go.uber.org/fx"

	"reactivities/internal/remote"
)

var Module = fx.Provide(
	provideClient, provideActivityAPI, provideUserAPI)

func provideClient() *remote.Client {
	baseURL := os.Getenv("REACTIVITIES_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + os.Getenv("PORT")
	}
	return remote.NewClient(baseURL)
}

func provideActivityAPI(client *remote.Client) remote.ActivityAPIInterface {
	return remote.NewActivityAPI(client)
}

func provideUserAPI(client *remote.Client) remote.UserAPIInterface {
	return remote.NewUserAPI(client)
}
