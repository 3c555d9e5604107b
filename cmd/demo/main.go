// Command demo walks the client data layer end to end against a running
// activity server (see cmd/app): register or login, load the registry,
// create an activity and print the date-grouped view.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	remotefx "reactivities/cmd/fx/remote_fx"
	storesfx "reactivities/cmd/fx/stores_fx"
	"reactivities/internal/models/domain_models"
	"reactivities/internal/models/request_models"
	"reactivities/internal/stores"
)

type consoleNavigator struct{}

func (consoleNavigator) Push(path string) {
	log.Printf("navigate -> %s", path)
}

type consoleNotifier struct{}

func (consoleNotifier) Error(message string) {
	log.Printf("notification: %s", message)
}

func main() {
	_ = godotenv.Load()

	app := fx.New(
		remotefx.Module,
		storesfx.Module,

		fx.Provide(provideNavigator, provideNotifier),
		fx.Invoke(Run),
	)

	app.Run()
}

func provideNavigator() stores.Navigator {
	return consoleNavigator{}
}

func provideNotifier() stores.Notifier {
	return consoleNotifier{}
}

func Run(lc fx.Lifecycle, shutdowner fx.Shutdowner,
	userStore stores.UserStoreInterface,
	activityStore stores.ActivityStoreInterface) {

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go walkthrough(userStore, activityStore, shutdowner)
			return nil
		},
	})
}

func walkthrough(userStore stores.UserStoreInterface,
	activityStore stores.ActivityStoreInterface, shutdowner fx.Shutdowner) {

	defer func() { _ = shutdowner.Shutdown() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	signup := request_models.SignUpRequest{
		Username:    "demo",
		DisplayName: "Demo User",
		Email:       "demo@example.com",
		Password:    "Pa$$w0rd",
	}
	if err := userStore.Register(ctx, signup); err != nil {
		login := request_models.LoginRequest{Email: signup.Email, Password: signup.Password}
		if err := userStore.Login(ctx, login); err != nil {
			log.Printf("login failed: %v", err)
			return
		}
	}

	cancelSub := activityStore.Subscribe(func() {
		log.Printf("store changed: initialLoading=%v submitting=%v",
			activityStore.IsInitialLoading(), activityStore.IsSubmitting())
	})
	defer cancelSub()

	activityStore.LoadActivities(ctx)

	activityStore.CreateActivity(ctx, &domain_models.Activity{
		Title:       "Evening run",
		Description: "Easy 5k around the park",
		Category:    "fitness",
		Date:        time.Now().Add(48 * time.Hour),
		City:        "Seattle",
		Venue:       "Green Lake",
	})

	for _, group := range activityStore.ActivitiesByDate() {
		log.Printf("%s:", group.Date)
		for _, activity := range group.Activities {
			log.Printf("  %s (%s) at %s", activity.Title, activity.Category, activity.Venue)
		}
	}
}
