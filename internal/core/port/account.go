package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
)

// AccountRepository stores users and their role profiles.
type AccountRepository interface {
	// CreateUser inserts the profile matching u.Role (if any), sets
	// u.ProfileID and inserts the user, all in one transaction. Duplicate
	// emails or codes yield domain.ErrConflict.
	CreateUser(ctx context.Context, u *domain.User, p NewProfile) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CountUsersByRole(ctx context.Context, role domain.Role) (int64, error)

	GetRetailer(ctx context.Context, id uuid.UUID) (*domain.Retailer, error)
	FindRetailerByOutletCode(ctx context.Context, code string) (*domain.Retailer, error)
	ListRetailers(ctx context.Context) ([]domain.Retailer, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// NewProfile holds the profile created alongside a user. Only the field
// matching the user's role is read.
type NewProfile struct {
	Retailer *domain.Retailer
	Employee *domain.Employee
	Client   *domain.Client
}

// AuthUseCase covers login and account administration.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CreateAccount(ctx context.Context, req CreateAccountReq) (*domain.User, error)
	Me(ctx context.Context, actor domain.Actor) (*domain.User, error)
	// EnsureAdmin creates the bootstrap admin when no admin exists yet.
	EnsureAdmin(ctx context.Context, name, email, password string) (bool, error)

	ListRetailers(ctx context.Context) ([]domain.Retailer, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type CreateAccountReq struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     domain.Role
	Profile  NewProfile
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(u domain.User) (token string, expiresAt time.Time, err error)
	Parse(token string) (domain.Actor, error)
}
