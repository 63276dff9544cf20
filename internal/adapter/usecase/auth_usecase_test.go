package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
	"agency-desk/internal/core/port/mocks"
)

func newAuthUseCase(t *testing.T) (*AuthUseCase, *mocks.MockAccountRepository, *mocks.MockTokenService) {
	accounts := mocks.NewMockAccountRepository(t)
	tokens := mocks.NewMockTokenService(t)
	uc := NewAuthUseCase(accounts, tokens, discardLogger())
	uc.cost = bcrypt.MinCost
	uc.now = func() time.Time { return fixedNow }
	return uc, accounts, tokens
}

func TestLogin(t *testing.T) {
	uc, accounts, tokens := newAuthUseCase(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: uuid.New(), Email: "ops@agency.test", PasswordHash: string(hash), Role: domain.RoleAdmin}
	exp := fixedNow.Add(time.Hour)

	accounts.EXPECT().FindUserByEmail(mock.Anything, "ops@agency.test").Return(user, nil)
	tokens.EXPECT().Issue(*user).Return("signed", exp, nil)

	res, err := uc.Login(context.Background(), "  OPS@agency.test ", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, "signed", res.Token)
	require.Equal(t, exp, res.ExpiresAt)
	require.Equal(t, user, res.User)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc, accounts, _ := newAuthUseCase(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	accounts.EXPECT().FindUserByEmail(mock.Anything, "a@b.test").Return(&domain.User{PasswordHash: string(hash)}, nil)
	accounts.EXPECT().FindUserByEmail(mock.Anything, "ghost@b.test").Return(nil, nil)

	_, err = uc.Login(context.Background(), "a@b.test", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredential)

	_, err = uc.Login(context.Background(), "ghost@b.test", "whatever")
	require.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestCreateRetailerAccount(t *testing.T) {
	uc, accounts, _ := newAuthUseCase(t)

	accounts.EXPECT().
		CreateUser(mock.Anything, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("port.NewProfile")).
		RunAndReturn(func(_ context.Context, u *domain.User, p port.NewProfile) error {
			require.NotNil(t, p.Retailer)
			require.Nil(t, p.Employee)
			require.Equal(t, "OUT-77", p.Retailer.OutletCode)
			require.Equal(t, "shop@x.test", p.Retailer.Email)
			u.ID = uuid.New()
			u.ProfileID = uuid.New()
			return nil
		})

	user, err := uc.CreateAccount(context.Background(), port.CreateAccountReq{
		Name:     "Gupta",
		Email:    "Shop@X.test",
		Password: "long-enough",
		Role:     domain.RoleRetailer,
		Profile:  port.NewProfile{Retailer: &domain.Retailer{OutletCode: " OUT-77 ", ShopName: "Gupta General"}},
	})
	require.NoError(t, err)
	require.Equal(t, "shop@x.test", user.Email)
	require.NotEqual(t, uuid.Nil, user.ProfileID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("long-enough")))
}

func TestCreateAccountValidation(t *testing.T) {
	uc, _, _ := newAuthUseCase(t)

	cases := []struct {
		name string
		req  port.CreateAccountReq
	}{
		{"unknown role", port.CreateAccountReq{Email: "a@b.test", Password: "password1", Role: "owner"}},
		{"missing email", port.CreateAccountReq{Password: "password1", Role: domain.RoleAdmin}},
		{"short password", port.CreateAccountReq{Email: "a@b.test", Password: "short", Role: domain.RoleAdmin}},
		{"retailer without outlet", port.CreateAccountReq{Email: "a@b.test", Password: "password1", Role: domain.RoleRetailer}},
		{"employee without code", port.CreateAccountReq{
			Email: "a@b.test", Password: "password1", Role: domain.RoleEmployee,
			Profile: port.NewProfile{Employee: &domain.Employee{Name: "Ravi"}},
		}},
		{"client without organization", port.CreateAccountReq{Email: "a@b.test", Password: "password1", Role: domain.RoleClient}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateAccount(context.Background(), tc.req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestEnsureAdmin(t *testing.T) {
	t.Run("admin exists", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().CountUsersByRole(mock.Anything, domain.RoleAdmin).Return(int64(1), nil)

		created, err := uc.EnsureAdmin(context.Background(), "Admin", "admin@agency.test", "change-me-now")
		require.NoError(t, err)
		require.False(t, created)
	})

	t.Run("bootstraps first admin", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().CountUsersByRole(mock.Anything, domain.RoleAdmin).Return(int64(0), nil)
		accounts.EXPECT().
			CreateUser(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
				return u.Role == domain.RoleAdmin && u.Email == "admin@agency.test"
			}), port.NewProfile{}).
			Return(nil)

		created, err := uc.EnsureAdmin(context.Background(), "Admin", "admin@agency.test", "change-me-now")
		require.NoError(t, err)
		require.True(t, created)
	})

	t.Run("no credentials configured", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().CountUsersByRole(mock.Anything, domain.RoleAdmin).Return(int64(0), nil)

		created, err := uc.EnsureAdmin(context.Background(), "", "", "")
		require.NoError(t, err)
		require.False(t, created)
	})
}
