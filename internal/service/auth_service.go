package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"citysim/internal/repository"
)

const (
	tokenIssuer     = "citysim"
	defaultTokenTTL = time.Hour
	maxMayorName    = 32
	minPasswordLen  = 6
)

// AuthOptions holds the JWT settings from the auth config section.
type AuthOptions struct {
	SigningKey string
	TokenTTL   time.Duration
}

var (
	// ErrInvalidCredentials covers both an unknown mayor and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Token is a signed bearer token for one mayor.
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type mayorClaims struct {
	jwt.RegisteredClaims
	MayorID int `json:"mayor_id"`
}

// AuthService registers mayors and issues the tokens that guard the game API.
type AuthService struct {
	mayors repository.Mayors
	key    []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(mayors repository.Mayors, opts AuthOptions) *AuthService {
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{mayors: mayors, key: []byte(opts.SigningKey), ttl: ttl, now: time.Now}
}

func validateCredentials(name, password string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: mayor name is empty", ErrInvalidArgument)
	case utf8.RuneCountInString(name) > maxMayorName:
		return fmt.Errorf("%w: mayor name is longer than %d characters", ErrInvalidArgument, maxMayorName)
	case utf8.RuneCountInString(password) < minPasswordLen:
		return fmt.Errorf("%w: password needs at least %d characters", ErrInvalidArgument, minPasswordLen)
	}
	return nil
}

// SignUp registers a mayor and returns the new account id.
func (s *AuthService) SignUp(ctx context.Context, name, password string) (int, error) {
	name = strings.TrimSpace(name)
	if err := validateCredentials(name, password); err != nil {
		return 0, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	return s.mayors.CreateMayor(ctx, name, string(hash))
}

func (s *AuthService) SignIn(ctx context.Context, name, password string) (Token, error) {
	m, err := s.mayors.MayorByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, repository.ErrMayorNotFound) {
		return Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return Token{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) != nil {
		return Token{}, ErrInvalidCredentials
	}
	return s.issue(m.ID)
}

func (s *AuthService) issue(mayorID int) (Token, error) {
	now := s.now()
	expires := now.Add(s.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mayorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.Itoa(mayorID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		MayorID: mayorID,
	})
	signed, err := tok.SignedString(s.key)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: expires.UTC()}, nil
}

// ParseToken returns the mayor id carried by a valid HS256 token from this
// issuer. Every rejection wraps ErrInvalidToken.
func (s *AuthService) ParseToken(raw string) (int, error) {
	var claims mayorClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims.MayorID, nil
}
