package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-inbox-pilot/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenMissingClaim is returned when a token verifies cryptographically
// but lacks a claim the application requires (subject or email).
var ErrTokenMissingClaim = errors.New("token missing required claim")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the provided now instant
//   - ExpiresAt (exp): now plus tokenDuration
//   - email:          the canonical account email, used to resolve the user
//   - role:           the authorization role at issue time
//
// The caller supplies now so token lifetimes stay testable; all parameters
// are required and an error is returned if any of them are empty or zero.
func GenerateJWTToken(issuer string, user models.User, now time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || now.IsZero() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:  user.Email,
		Role:   user.Role,
		UserID: user.UserID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString

	return *claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - HMAC signing method and signature verification with the provided key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) and email claim presence; subject is converted to the
//     int64 UserID
//
// The returned error preserves the jwt/v5 sentinel chain, so callers can
// distinguish expiry via errors.Is(err, jwt.ErrTokenExpired) and missing
// claims via errors.Is(err, ErrTokenMissingClaim).
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errors.New("unexpected claims type in parsed token")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return models.Token{}, fmt.Errorf("empty subject: %w", ErrTokenMissingClaim)
	}
	if claims.Email == "" {
		return models.Token{}, fmt.Errorf("empty email: %w", ErrTokenMissingClaim)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	claims.UserID = userID

	return *claims, nil
}

