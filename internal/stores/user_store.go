package stores

import (
	"context"
	"log"
	"sync"

	"reactivities/internal/models/domain_models"
	"reactivities/internal/models/request_models"
	"reactivities/internal/remote"
)

// TokenSink receives the session token after a successful login or
// registration so the transport can authenticate subsequent calls.
type TokenSink interface {
	SetToken(token string)
}

// UserStore owns the identity of the acting user for the session. It is the
// CurrentUserProvider the activity store consults. Login and Register
// propagate their errors: the form layer renders them inline rather than
// through the Notifier.
type UserStoreInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) error
	Register(ctx context.Context, request request_models.SignUpRequest) error
	GetUser(ctx context.Context)
	Logout()

	CurrentUser() *domain_models.User
	IsLoggedIn() bool

	Subscribe(fn func()) (cancel func())
}

type UserStore struct {
	api    remote.UserAPIInterface
	tokens TokenSink
	nav    Navigator

	hub *signalHub

	mu   sync.RWMutex
	user *domain_models.User
}

func NewUserStore(api remote.UserAPIInterface, tokens TokenSink, nav Navigator) UserStoreInterface {
	return &UserStore{
		api:    api,
		tokens: tokens,
		nav:    nav,
		hub:    newSignalHub(),
	}
}

func (s *UserStore) Login(ctx context.Context, request request_models.LoginRequest) error {
	user, err := s.api.Login(ctx, request)
	if err != nil {
		return err
	}

	s.setUser(user)
	s.tokens.SetToken(user.Token)
	s.nav.Push("/activities")
	return nil
}

func (s *UserStore) Register(ctx context.Context, request request_models.SignUpRequest) error {
	user, err := s.api.Register(ctx, request)
	if err != nil {
		return err
	}

	s.setUser(user)
	s.tokens.SetToken(user.Token)
	s.nav.Push("/activities")
	return nil
}

func (s *UserStore) GetUser(ctx context.Context) {
	user, err := s.api.Current(ctx)
	if err != nil {
		log.Printf("Error fetching current user: %v", err)
		return
	}
	s.setUser(user)
}

func (s *UserStore) Logout() {
	s.tokens.SetToken("")
	s.setUser(nil)
	s.nav.Push("/")
}

func (s *UserStore) CurrentUser() *domain_models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *UserStore) IsLoggedIn() bool {
	return s.CurrentUser() != nil
}

func (s *UserStore) Subscribe(fn func()) func() {
	return s.hub.subscribe(fn)
}

func (s *UserStore) setUser(user *domain_models.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.hub.publish()
}
