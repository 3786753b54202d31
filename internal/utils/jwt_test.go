package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-inbox-pilot/models"
	"github.com/golang-jwt/jwt/v5"
)

func testUser() models.User {
	return models.User{
		UserID:   123,
		Email:    "a@x.com",
		Name:     "a",
		Role:     models.DefaultUserRole,
		IsActive: true,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	now := time.Now()
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, testUser(), now, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*models.Token)
	if !ok {
		t.Fatal("could not cast claims to models.Token")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email claim 'a@x.com', got %s", claims.Email)
	}
	if claims.Role != models.DefaultUserRole {
		t.Errorf("expected role claim %q, got %q", models.DefaultUserRole, claims.Role)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		issuer   string
		now      time.Time
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", now, time.Hour, "key"},
		{"zero now", "iss", time.Time{}, time.Hour, "key"},
		{"zero duration", "iss", now, 0, "key"},
		{"empty key", "iss", now, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser(), tt.now, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"
	user := testUser()

	genToken, err := GenerateJWTToken(issuer, user, time.Now(), 5*time.Minute, key)
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != user.UserID {
		t.Errorf("expected userID %d, got %d", user.UserID, parsedToken.UserID)
	}
	if parsedToken.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, parsedToken.Email)
	}
	if parsedToken.Role != user.Role {
		t.Errorf("expected role %s, got %s", user.Role, parsedToken.Role)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken(issuer, testUser(), time.Now(), time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected jwt.ErrTokenSignatureInvalid in chain, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"

	// Issued in the past so the token is already expired when parsed.
	issuedAt := time.Now().Add(-2 * time.Hour)
	genToken, err := GenerateJWTToken(issuer, testUser(), issuedAt, time.Hour, key)
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired in chain, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"

	genToken, _ := GenerateJWTToken("issuer-a", testUser(), time.Now(), time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "issuer-b")
	if err == nil {
		t.Error("expected error for wrong issuer, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "issuer")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Errorf("expected jwt.ErrTokenMalformed in chain, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingEmailClaim(t *testing.T) {
	issuer := "test-issuer"
	key := "key"

	// Token signed the same way but without the email claim.
	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "123",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, key, issuer)
	if !errors.Is(err, ErrTokenMissingClaim) {
		t.Errorf("expected ErrTokenMissingClaim, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingSubjectClaim(t *testing.T) {
	issuer := "test-issuer"
	key := "key"

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: "a@x.com",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, key, issuer)
	if !errors.Is(err, ErrTokenMissingClaim) {
		t.Errorf("expected ErrTokenMissingClaim, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsNonHMAC(t *testing.T) {
	// Unsigned token declaring alg "none" must be rejected by the keyfunc.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:  "test-issuer",
		Subject: "1",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(unsigned, "key", "test-issuer")
	if err == nil {
		t.Error("expected error for non-HMAC signing method, got nil")
	}
}

func TestGenerateAndValidate_SameSubjectForSameUser(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	user := testUser()

	t1, err := GenerateJWTToken(issuer, user, time.Now(), time.Hour, key)
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}
	t2, err := GenerateJWTToken(issuer, user, time.Now().Add(time.Second), time.Hour, key)
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	p1, err := ValidateAndParseJWTToken(t1.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("ValidateAndParseJWTToken error: %v", err)
	}
	p2, err := ValidateAndParseJWTToken(t2.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("ValidateAndParseJWTToken error: %v", err)
	}

	if p1.Subject != p2.Subject {
		t.Errorf("expected same subject for the same user, got %q and %q", p1.Subject, p2.Subject)
	}
}

