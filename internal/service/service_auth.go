package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/benharosh/studio-cms/internal/config"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/utils"
	"github.com/benharosh/studio-cms/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
//
// The panel has exactly one built-in admin account configured at startup;
// there is no user store behind it. The configured password is hashed with
// bcrypt at construction time so the plain value is not kept in memory
// longer than necessary.
type authService struct {
	// adminLogin is the login of the built-in admin account.
	adminLogin string

	// adminPasswordHash is the bcrypt hash of the configured admin
	// password, computed once at construction.
	adminPasswordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService for the built-in admin account
// configured in cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction. Returns an error if the configured password cannot be
// hashed.
func NewAuthService(cfg config.App, logger *logger.Logger) (AuthService, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}

	return &authService{
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: passwordHash,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}, nil
}

// Login authenticates the built-in admin account.
//
// It validates that both Login and Password are non-empty, compares the pair
// against the configured account, and issues a session token on success.
//
// Returns the signed token or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrWrongCredentials if either half of the pair does not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid credentials provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	loginMatches := subtle.ConstantTimeCompare([]byte(credentials.Login), []byte(a.adminLogin)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(credentials.Password))
	if !loginMatches || passwordErr != nil {
		log.Error().Str("login", credentials.Login).Msg("wrong login or password")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.adminLogin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("session token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
