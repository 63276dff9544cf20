package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

const minPasswordLen = 8

type AuthUseCase struct {
	accounts port.AccountRepository
	tokens   port.TokenService
	logger   *slog.Logger
	now      func() time.Time
	cost     int
}

func NewAuthUseCase(accounts port.AccountRepository, tokens port.TokenService, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		cost:     bcrypt.DefaultCost,
	}
}

// Login checks the password and issues a token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*port.LoginResult, error) {
	user, err := u.accounts.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredential
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	token, exp, err := u.tokens.Issue(*user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	u.logger.Info("user logged in", slog.String("user_id", user.ID.String()), slog.String("role", string(user.Role)))
	return &port.LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// CreateAccount registers a user together with the profile of its role.
func (u *AuthUseCase) CreateAccount(ctx context.Context, req port.CreateAccountReq) (*domain.User, error) {
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, req.Role)
	}
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	profile, err := u.profileFor(req, email)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         req.Role,
		CreatedAt:    u.now(),
	}
	if err := u.accounts.CreateUser(ctx, user, profile); err != nil {
		return nil, err
	}
	u.logger.Info("account created", slog.String("user_id", user.ID.String()), slog.String("role", string(user.Role)))
	return user, nil
}

func (u *AuthUseCase) profileFor(req port.CreateAccountReq, email string) (port.NewProfile, error) {
	now := u.now()
	switch req.Role {
	case domain.RoleRetailer:
		r := req.Profile.Retailer
		if r == nil || strings.TrimSpace(r.OutletCode) == "" {
			return port.NewProfile{}, fmt.Errorf("%w: retailer profile needs an outlet code", domain.ErrInvalidInput)
		}
		p := *r
		p.OutletCode = strings.TrimSpace(p.OutletCode)
		if p.Email == "" {
			p.Email = email
		}
		p.CreatedAt = now
		return port.NewProfile{Retailer: &p}, nil
	case domain.RoleEmployee:
		e := req.Profile.Employee
		if e == nil || strings.TrimSpace(e.EmployeeCode) == "" {
			return port.NewProfile{}, fmt.Errorf("%w: employee profile needs an employee code", domain.ErrInvalidInput)
		}
		p := *e
		p.EmployeeCode = strings.TrimSpace(p.EmployeeCode)
		if p.Name == "" {
			p.Name = strings.TrimSpace(req.Name)
		}
		if p.Email == "" {
			p.Email = email
		}
		p.CreatedAt = now
		return port.NewProfile{Employee: &p}, nil
	case domain.RoleClient:
		c := req.Profile.Client
		if c == nil || strings.TrimSpace(c.Organization) == "" {
			return port.NewProfile{}, fmt.Errorf("%w: client profile needs an organization", domain.ErrInvalidInput)
		}
		p := *c
		if p.ContactName == "" {
			p.ContactName = strings.TrimSpace(req.Name)
		}
		if p.Email == "" {
			p.Email = email
		}
		p.CreatedAt = now
		return port.NewProfile{Client: &p}, nil
	}
	return port.NewProfile{}, nil
}

func (u *AuthUseCase) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	user, err := u.accounts.GetUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap admin unless an admin already exists.
// It reports whether an account was created.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	n, err := u.accounts.CountUsersByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if email == "" || password == "" {
		u.logger.Warn("no admin account exists and no bootstrap credentials are configured")
		return false, nil
	}
	if _, err := u.CreateAccount(ctx, port.CreateAccountReq{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     domain.RoleAdmin,
	}); err != nil {
		return false, fmt.Errorf("bootstrap admin: %w", err)
	}
	return true, nil
}

func (u *AuthUseCase) ListRetailers(ctx context.Context) ([]domain.Retailer, error) {
	return u.accounts.ListRetailers(ctx)
}

func (u *AuthUseCase) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return u.accounts.ListEmployees(ctx)
}

func (u *AuthUseCase) ListClients(ctx context.Context) ([]domain.Client, error) {
	return u.accounts.ListClients(ctx)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
