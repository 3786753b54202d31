package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/crypto"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/store"
	"github.com/MKhiriev/go-inbox-pilot/internal/utils"
	"github.com/MKhiriev/go-inbox-pilot/internal/validators"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// settingsRepository seeds the default settings document at registration.
	settingsRepository store.SettingsRepository

	// hasher derives password hashes for storage and checks candidates
	// against them. Plaintext passwords never leave this service.
	hasher crypto.PasswordHasher

	// validator checks registration and login payloads before any
	// storage access.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now supplies the current time. Kept as a field so tests can freeze it.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, settingsRepository store.SettingsRepository, hasher crypto.PasswordHasher, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		settingsRepository: settingsRepository,
		hasher:             hasher,
		validator:          validator,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		now:                time.Now,
		logger:             logger,
	}
}

// Register creates a new user account.
//
// It validates the payload, lowercases the email into its canonical form,
// hashes the password with bcrypt, and delegates persistence to the
// UserRepository. The display name falls back to the email's local part
// when the payload leaves it empty. A default settings document is seeded
// right after the account is created.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if the payload fails validation.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is already taken.
//   - A wrapped storage error if a repository call fails.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := a.now().UTC()
	user := models.User{
		Email:     strings.ToLower(request.Email),
		Name:      request.Name,
		Role:      models.DefaultUserRole,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user.Name == "" {
		user.Name = user.LocalPart()
	}

	passwordHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}
	user.PasswordHash = passwordHash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// The account is committed at this point. A failure below surfaces to
	// the caller but does not roll the account back: GetSettings materializes
	// the same defaults on first read, so the record heals itself.
	if err := a.settingsRepository.InsertSettings(ctx, models.DefaultSettings(registeredUser, now)); err != nil {
		log.Err(err).Int64("userID", registeredUser.UserID).Msg("default settings creation ended with error")
		return models.User{}, fmt.Errorf("default settings creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates the payload, looks the account up by its canonical email,
// and compares the supplied password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if the payload fails validation.
//   - ErrInvalidCredentials if the email is unknown or the password is
//     wrong; the two cases are deliberately indistinguishable so account
//     existence cannot be probed.
//   - ErrUserIsInactive if the credentials are right but the account is
//     deactivated.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := strings.ToLower(request.Email)
	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, foundUser.PasswordHash) {
		log.Warn().
			Int64("userID", foundUser.UserID).
			Str("email", email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Warn().Int64("userID", foundUser.UserID).Str("email", email).Msg("login attempt for inactive user")
		return models.User{}, ErrUserIsInactive
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed
// if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate verifies a raw JWT string and resolves it to the live user
// record behind it.
//
// Verification alone is not enough to admit a request: the account named
// by the token must still exist and still be active. Each failure mode
// keeps its own sentinel so the transport layer can answer precisely.
//
// Returns the resolved user or:
//   - ErrTokenIsExpired if the token verified but its "exp" is in the past.
//   - ErrTokenIsInvalid for any other verification failure (bad signature,
//     malformed token, wrong issuer, missing claims; the latter still
//     matches utils.ErrTokenMissingClaim through the chain).
//   - store.ErrNoUserWasFound (wrapped) if the token's user is gone.
//   - ErrUserIsInactive if the token's user has been deactivated.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}
		log.Debug().Err(err).Msg("token verification failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, token.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", token.Email).Msg("valid token for a user that no longer exists")
			return models.User{}, fmt.Errorf("token user lookup: %w", err)
		}
		log.Err(err).Str("email", token.Email).Msg("token user lookup failed")
		return models.User{}, fmt.Errorf("token user lookup failed: %w", err)
	}

	if !foundUser.IsActive {
		log.Warn().Int64("userID", foundUser.UserID).Msg("valid token for an inactive user")
		return models.User{}, ErrUserIsInactive
	}

	return foundUser, nil
}
