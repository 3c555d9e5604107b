package services

import (
	"context"
	"log"

	"reactivities/internal/models/domain_models"
	"reactivities/internal/models/request_models"
	"reactivities/internal/repositories"
	"reactivities/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*domain_models.User, error)
	Register(ctx context.Context, request request_models.SignUpRequest) (*domain_models.User, error)
	GetCurrent(ctx context.Context, username string) (*domain_models.User, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepositoryInterface
}

func NewAccountService(accountRepo repositories.AccountRepositoryInterface) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// Login deliberately reports a missing account and a wrong password the same
// way, so callers cannot probe which emails are registered.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*domain_models.User, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error finding account: %v", err)
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issueToken(account)
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*domain_models.User, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error finding account: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	existing, err = a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		log.Printf("Error finding account: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, err
	}

	account := &domain_models.Account{
		Username:     request.Username,
		DisplayName:  request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		log.Printf("Error inserting account: %v", err)
		return nil, err
	}

	return a.issueToken(account)
}

func (a *AccountService) GetCurrent(ctx context.Context, username string) (*domain_models.User, error) {
	account, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		log.Printf("Error finding account: %v", err)
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account.AsUser(), nil
}

func (a *AccountService) issueToken(account *domain_models.Account) (*domain_models.User, error) {
	token, err := utils.CreateToken(account.Username, account.DisplayName)
	if err != nil {
		log.Printf("Error creating token: %v", err)
		return nil, err
	}

	user := account.AsUser()
	user.Token = token
	return user, nil
}
