package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/allisson/cardledger/internal/errors"
	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

// MinTokenSecretLength is the shortest HMAC secret accepted for signing access tokens.
const MinTokenSecretLength = 32

// ErrWeakTokenSecret indicates an HMAC secret shorter than MinTokenSecretLength.
var ErrWeakTokenSecret = errors.New("auth token secret must be at least 32 characters")

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// jwtTokenService signs HS256 access tokens.
type jwtTokenService struct {
	signingKey []byte
	lifetime   time.Duration
	leeway     time.Duration
}

// Issue signs an access token carrying the user id, email and role.
func (s *jwtTokenService) Issue(user *userDomain.User, now time.Time) (*userDomain.AccessToken, error) {
	expiresAt := now.Add(s.lifetime)
	claims := accessClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign access token")
	}
	return &userDomain.AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Parse verifies signature and expiry and returns the token's principal.
func (s *jwtTokenService) Parse(token string, now time.Time) (*userDomain.Principal, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&accessClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, apperrors.Wrap(userDomain.ErrInvalidToken, err.Error())
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid {
		return nil, userDomain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.Wrap(userDomain.ErrInvalidToken, "invalid subject")
	}
	role, err := userDomain.ParseRole(claims.Role)
	if err != nil {
		return nil, apperrors.Wrap(userDomain.ErrInvalidToken, "invalid role claim")
	}

	return &userDomain.Principal{UserID: userID, Email: claims.Email, Role: role}, nil
}

// NewTokenService creates a TokenService signing HS256 tokens with secret.
func NewTokenService(secret string, lifetime time.Duration) (TokenService, error) {
	if len(secret) < MinTokenSecretLength {
		return nil, ErrWeakTokenSecret
	}
	return &jwtTokenService{
		signingKey: []byte(secret),
		lifetime:   lifetime,
		leeway:     30 * time.Second,
	}, nil
}
