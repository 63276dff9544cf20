package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
)

// Claims is the payload of an access token.
type Claims struct {
	Role      domain.Role `json:"role"`
	ProfileID string      `json:"profile_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 access tokens. It implements
// port.TokenService.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue signs a token for u that expires after the configured TTL.
func (s *JWTService) Issue(u domain.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if u.ProfileID != uuid.Nil {
		claims.ProfileID = u.ProfileID.String()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Parse verifies a token and returns the actor it was issued to. Every
// failure is reported as domain.ErrInvalidCredential.
func (s *JWTService) Parse(token string) (domain.Actor, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", domain.ErrInvalidCredential, err)
	}
	if !parsed.Valid {
		return domain.Actor{}, fmt.Errorf("%w: invalid token", domain.ErrInvalidCredential)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: bad subject", domain.ErrInvalidCredential)
	}
	if !claims.Role.Valid() {
		return domain.Actor{}, fmt.Errorf("%w: unknown role", domain.ErrInvalidCredential)
	}
	actor := domain.Actor{UserID: userID, Role: claims.Role}
	if claims.ProfileID != "" {
		if actor.ProfileID, err = uuid.Parse(claims.ProfileID); err != nil {
			return domain.Actor{}, fmt.Errorf("%w: bad profile id", domain.ErrInvalidCredential)
		}
	}
	if actor.Role != domain.RoleAdmin && actor.ProfileID == uuid.Nil {
		return domain.Actor{}, errors.Join(domain.ErrInvalidCredential, errors.New("missing profile id"))
	}
	return actor, nil
}
