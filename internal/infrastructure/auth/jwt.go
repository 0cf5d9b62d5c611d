package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/portalkit/portalkit/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenWrongType = errors.New("unexpected token type")
)

// Claims identify the user by id in the subject claim. SessionID ties an
// access token to the refresh token it was issued with.
type Claims struct {
	Username  string    `json:"username"`
	SessionID string    `json:"session_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrTokenInvalid
	}
	return uint(id), nil
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      biztime.Clock
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  time.Duration(accessExpMinutes) * time.Minute,
		refreshTTL: time.Duration(refreshExpDays) * 24 * time.Hour,
		clock:      biztime.SystemClock,
	}
}

// WithClock replaces the time source.
func (s *JWTService) WithClock(clock biztime.Clock) *JWTService {
	s.clock = clock
	return s
}

// Generate issues a fresh access/refresh pair under a new session id.
func (s *JWTService) Generate(userID uint, username string) (*TokenPair, error) {
	sessionID := uuid.NewString()

	access, err := s.sign(userID, username, sessionID, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.sign(userID, username, sessionID, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessTTL:    s.accessTTL,
		RefreshTTL:   s.refreshTTL,
	}, nil
}

// Verify parses tokenString and checks it is of the expected type.
func (s *JWTService) Verify(tokenString string, expected TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.TokenType != expected {
		return nil, ErrTokenWrongType
	}
	return claims, nil
}

// Refresh exchanges a refresh token for a new access token in the same
// session. The refresh token itself is not rotated.
func (s *JWTService) Refresh(refreshToken string) (string, *Claims, error) {
	claims, err := s.Verify(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return "", nil, err
	}

	access, err := s.sign(userID, claims.Username, claims.SessionID, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	return access, claims, nil
}

func (s *JWTService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *JWTService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *JWTService) sign(userID uint, username, sessionID string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := s.clock()
	claims := &Claims{
		Username:  username,
		SessionID: sessionID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
