package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"agency-desk/internal/core/domain"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestIssueAndParse(t *testing.T) {
	svc := NewJWTService(secret, time.Hour, "agency-desk")
	u := domain.User{ID: uuid.New(), Role: domain.RoleRetailer, ProfileID: uuid.New()}

	token, exp, err := svc.Issue(u)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	actor, err := svc.Parse(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, actor.UserID)
	require.Equal(t, domain.RoleRetailer, actor.Role)
	require.Equal(t, u.ProfileID, actor.ProfileID)
}

func TestParseAdminWithoutProfile(t *testing.T) {
	svc := NewJWTService(secret, time.Hour, "agency-desk")
	token, _, err := svc.Issue(domain.User{ID: uuid.New(), Role: domain.RoleAdmin})
	require.NoError(t, err)

	actor, err := svc.Parse(token)
	require.NoError(t, err)
	require.Equal(t, uuid.Nil, actor.ProfileID)
}

func TestParseRejects(t *testing.T) {
	svc := NewJWTService(secret, time.Hour, "agency-desk")
	u := domain.User{ID: uuid.New(), Role: domain.RoleEmployee, ProfileID: uuid.New()}

	t.Run("expired", func(t *testing.T) {
		old := NewJWTService(secret, time.Minute, "agency-desk")
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, _, err := old.Issue(u)
		require.NoError(t, err)
		_, err = svc.Parse(token)
		require.ErrorIs(t, err, domain.ErrInvalidCredential)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("ffffffffffffffffffffffffffffffff", time.Hour, "agency-desk")
		token, _, err := other.Issue(u)
		require.NoError(t, err)
		_, err = svc.Parse(token)
		require.ErrorIs(t, err, domain.ErrInvalidCredential)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTService(secret, time.Hour, "someone-else")
		token, _, err := other.Issue(u)
		require.NoError(t, err)
		_, err = svc.Parse(token)
		require.ErrorIs(t, err, domain.ErrInvalidCredential)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := &Claims{Role: domain.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    "agency-desk",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Parse(token)
		require.ErrorIs(t, err, domain.ErrInvalidCredential)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Parse("not.a.token")
		require.ErrorIs(t, err, domain.ErrInvalidCredential)
	})
}
