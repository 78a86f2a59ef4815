package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/repository"
	"github.com/jwalitptl/healthrecord-api/pkg/auth"
	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

var _ repository.UserRepository = (*mockUserRepository)(nil)

type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *model.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*model.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func newTokenService() auth.TokenService {
	return auth.NewJWTService("test-secret", time.Hour)
}

func TestRegisterHashesPassword(t *testing.T) {
	var created *model.User
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, user *model.User) error {
			created = user
			return nil
		},
	}
	svc := NewService(repo, newTokenService())

	user, err := svc.Register(context.Background(), &model.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{Email: email}, nil
		},
	}
	svc := NewService(repo, newTokenService())

	_, err := svc.Register(context.Background(), &model.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConflict, apperrors.FromError(err).Code)
}

func TestRegisterDuplicateEmailRace(t *testing.T) {
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, user *model.User) error {
			return repository.ErrDuplicateEmail
		},
	}
	svc := NewService(repo, newTokenService())

	_, err := svc.Register(context.Background(), &model.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConflict, apperrors.FromError(err).Code)
}

func TestLoginReturnsVerifiableToken(t *testing.T) {
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				Base:         model.Base{ID: userID},
				Email:        email,
				PasswordHash: string(hash),
			}, nil
		},
	}
	tokenSvc := newTokenService()
	svc := NewService(repo, tokenSvc)

	token, err := svc.Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)

	claims, err := tokenSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

// Unknown email and wrong password must be indistinguishable to the
// caller, or signin leaks which accounts exist.
func TestLoginUniformInvalidCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	unknownRepo := &mockUserRepository{}
	wrongPasswordRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				Base:         model.Base{ID: uuid.New()},
				Email:        email,
				PasswordHash: string(hash),
			}, nil
		},
	}

	_, errUnknown := NewService(unknownRepo, newTokenService()).
		Login(context.Background(), "ghost@example.com", "whatever")
	_, errWrong := NewService(wrongPasswordRepo, newTokenService()).
		Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
	assert.Equal(t, apperrors.ErrInvalidCredentials, apperrors.FromError(errUnknown).Code)
	assert.Equal(t, apperrors.ErrInvalidCredentials, apperrors.FromError(errWrong).Code)
}
