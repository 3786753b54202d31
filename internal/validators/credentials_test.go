package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-inbox-pilot/models"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secret123",
		Name:     "Ana",
	}
}

func validLoginRequest() models.LoginRequest {
	return models.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	}
}

// ---------------------------------------------------------------------------
// TestNewCredentialsValidator
// ---------------------------------------------------------------------------

func TestNewCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestCredentialsValidate_Dispatch
// ---------------------------------------------------------------------------

func TestCredentialsValidate_Dispatch(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("RegisterRequest value", func(t *testing.T) {
		r := validRegisterRequest()
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("RegisterRequest pointer", func(t *testing.T) {
		r := validRegisterRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("LoginRequest value", func(t *testing.T) {
		r := validLoginRequest()
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("LoginRequest pointer", func(t *testing.T) {
		r := validLoginRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})
}

// ---------------------------------------------------------------------------
// TestValidateRegisterRequest
// ---------------------------------------------------------------------------

func TestValidateRegisterRequest(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validRegisterRequest()))
	})

	t.Run("empty name is allowed", func(t *testing.T) {
		r := validRegisterRequest()
		r.Name = ""
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("empty email", func(t *testing.T) {
		r := validRegisterRequest()
		r.Email = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrInvalidEmail)
	})

	t.Run("email without at sign", func(t *testing.T) {
		r := validRegisterRequest()
		r.Email = "not-an-email"
		require.ErrorIs(t, v.Validate(ctx, r), ErrInvalidEmail)
	})

	t.Run("email without dotted domain", func(t *testing.T) {
		r := validRegisterRequest()
		r.Email = "ana@localhost"
		require.ErrorIs(t, v.Validate(ctx, r), ErrInvalidEmail)
	})

	t.Run("email with display name", func(t *testing.T) {
		r := validRegisterRequest()
		r.Email = "Ana <ana@example.com>"
		require.ErrorIs(t, v.Validate(ctx, r), ErrInvalidEmail)
	})

	t.Run("short domain is accepted", func(t *testing.T) {
		r := validRegisterRequest()
		r.Email = "a@x.com"
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("password too short", func(t *testing.T) {
		r := validRegisterRequest()
		r.Password = "12345"
		require.ErrorIs(t, v.Validate(ctx, r), ErrPasswordTooShort)
	})

	t.Run("password of exactly six characters", func(t *testing.T) {
		r := validRegisterRequest()
		r.Password = "123456"
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("multibyte password counts runes", func(t *testing.T) {
		r := validRegisterRequest()
		r.Password = "пароль" // six runes, twelve bytes
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("scoped to email skips password", func(t *testing.T) {
		r := validRegisterRequest()
		r.Password = ""
		require.NoError(t, v.Validate(ctx, r, FieldEmail))
	})

	t.Run("unknown field", func(t *testing.T) {
		r := validRegisterRequest()
		require.ErrorIs(t, v.Validate(ctx, r, "nonexistent"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateLoginRequest
// ---------------------------------------------------------------------------

func TestValidateLoginRequest(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validLoginRequest()))
	})

	t.Run("invalid email", func(t *testing.T) {
		r := validLoginRequest()
		r.Email = "broken@"
		require.ErrorIs(t, v.Validate(ctx, r), ErrInvalidEmail)
	})

	t.Run("empty password passes boundary validation", func(t *testing.T) {
		r := validLoginRequest()
		r.Password = ""
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("unknown field", func(t *testing.T) {
		r := validLoginRequest()
		require.ErrorIs(t, v.Validate(ctx, r, FieldPassword), ErrUnknownField)
	})
}
