package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/repository"
	"github.com/jwalitptl/healthrecord-api/pkg/auth"
	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

const bcryptCost = 12

type Service struct {
	userRepo repository.UserRepository
	tokenSvc auth.TokenService
}

func NewService(userRepo repository.UserRepository, tokenSvc auth.TokenService) *Service {
	return &Service{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

// Register stores a new user with a bcrypt-hashed password. It returns
// no token; the caller signs in separately.
func (s *Service) Register(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("user already exists", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Base:         model.Base{ID: uuid.New()},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The pre-check races with concurrent signups; the unique
		// constraint is the authority.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("user already exists", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a signed token. An unknown
// email and a wrong password produce the same error, so a caller cannot
// probe for account existence.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperrors.InvalidCredentials()
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.InvalidCredentials()
	}

	token, err := s.tokenSvc.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
