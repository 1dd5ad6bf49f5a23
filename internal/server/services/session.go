// Package services implements the session core: registration, password
// authentication, refresh token rotation under an absolute session
// ceiling, logout and access token verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/password"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// maxRefreshAttempts bounds retries after a refresh token value collision.
const maxRefreshAttempts = 3

type TokenPair struct {
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

type AuthResult struct {
	TokenPair
	PrincipalID string
}

type RegisterInput struct {
	Identity string
	Password string
	Role     string
	Name     string
}

type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *password.Hasher
	issuer      *auth.Issuer

	refreshTTL    time.Duration
	ceiling       time.Duration
	singleSession bool

	now     func() time.Time
	log     logging.Logger
	metrics *metrics.Metrics
}

type Option func(*SessionService)

// WithClock replaces time.Now for the service and its token issuer.
func WithClock(now func() time.Time) Option {
	return func(s *SessionService) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *SessionService) { s.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *SessionService) { s.metrics = m }
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, opts ...Option) (*SessionService, error) {
	s := &SessionService{
		db:            db,
		repomanager:   m,
		refreshTTL:    cfg.RefreshTokenValidityDuration,
		ceiling:       cfg.SessionCeiling,
		singleSession: cfg.SingleSession,
		now:           time.Now,
		log:           logging.Nop{},
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("module", "sessions")

	hasher, err := password.NewHasher(cfg.BcryptCost, cfg.HashWorkers)
	if err != nil {
		return nil, err
	}
	s.hasher = hasher
	s.issuer = auth.NewIssuer([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration, cfg.RefreshTokenBytes, auth.WithClock(s.now))

	return s, nil
}

// Register creates a principal and returns its password-free view.
func (s *SessionService) Register(ctx context.Context, in RegisterInput) (*models.PrincipalView, error) {
	identity, role, err := validateRegistration(&in)
	if err != nil {
		s.metrics.Registration(metrics.OutcomeInvalidInput)
		return nil, err
	}

	digest, err := s.hasher.Hash(ctx, []byte(in.Password))
	if err != nil {
		s.metrics.Registration(metrics.OutcomeError)
		return nil, err
	}

	p := &models.Principal{
		ID:           uuid.NewString(),
		Email:        identity,
		PasswordHash: digest,
		Role:         role,
		Name:         in.Name,
		CreatedAt:    s.now().UTC(),
	}

	if _, err := s.repomanager.Users(s.db).Create(ctx, p); err != nil {
		if errors.Is(err, common.ErrConflict) {
			s.metrics.Registration(metrics.OutcomeDuplicate)
			return nil, common.ErrDuplicateIdentity
		}
		s.metrics.Registration(metrics.OutcomeError)
		return nil, fmt.Errorf("error creating principal: %w", err)
	}

	s.metrics.Registration(metrics.OutcomeOK)
	s.log.Info(ctx, "principal registered", "principal_id", p.ID, "identity", p.Email, "role", p.Role)

	view := p.View()
	return &view, nil
}

// Authenticate checks the password and starts a new refresh chain.
// Unknown identity and wrong password both yield common.ErrInvalidCredentials.
func (s *SessionService) Authenticate(ctx context.Context, identity, plaintext string) (*AuthResult, error) {
	identity = common.NormalizeIdentity(identity)

	p, err := s.repomanager.Users(s.db).FindByIdentity(ctx, identity)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.metrics.Authentication(metrics.OutcomeError)
			return nil, fmt.Errorf("error searching principal: %w", err)
		}
		if err := s.hasher.VerifyDummy(ctx, []byte(plaintext)); err != nil {
			return nil, err
		}
		s.metrics.Authentication(metrics.OutcomeInvalidCredentials)
		s.log.Debug(ctx, "authentication failed", "reason", "unknown identity")
		return nil, common.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(ctx, []byte(plaintext), p.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.metrics.Authentication(metrics.OutcomeInvalidCredentials)
		s.log.Debug(ctx, "authentication failed", "reason", "password mismatch", "principal_id", p.ID)
		return nil, common.ErrInvalidCredentials
	}

	now := s.now()
	var pair *TokenPair

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if s.singleSession {
			if _, err := s.repomanager.RefreshTokens(tx).DeleteAllForUser(ctx, p.ID); err != nil {
				return err
			}
		}
		pair, err = s.issuePair(ctx, tx, p, now, now)
		return err
	})
	if err != nil {
		s.metrics.Authentication(metrics.OutcomeError)
		return nil, fmt.Errorf("error starting session: %w", err)
	}

	s.metrics.Authentication(metrics.OutcomeOK)
	s.log.Info(ctx, "principal authenticated", "principal_id", p.ID)

	return &AuthResult{TokenPair: *pair, PrincipalID: p.ID}, nil
}

// Rotate exchanges a refresh token for a new pair. The presented token is
// consumed even when the chain has outlived the session ceiling; in that
// case no replacement is issued and common.ErrSessionExpired is returned.
func (s *SessionService) Rotate(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		s.metrics.Rotation(metrics.OutcomeInvalidToken)
		return nil, common.ErrInvalidRefreshToken
	}

	now := s.now()
	var (
		pair      *TokenPair
		userID    string
		expired   bool
		chainFrom time.Time
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tokens := s.repomanager.RefreshTokens(tx)

		rec, err := tokens.TakeValid(ctx, refreshToken, now)
		if err != nil {
			return err
		}
		// a row past its expiry is treated as absent even if the store returned it
		if !rec.Valid(now) {
			return common.ErrorNotFound
		}
		userID = rec.UserID
		chainFrom = rec.ChainStart()

		if now.Sub(chainFrom) > s.ceiling {
			expired = true
			return nil
		}

		p, err := s.repomanager.Users(tx).FindByID(ctx, rec.UserID)
		if err != nil {
			return err
		}

		if s.singleSession {
			if _, err := tokens.DeleteAllForUser(ctx, p.ID); err != nil {
				return err
			}
		}

		pair, err = s.issuePair(ctx, tx, p, now, chainFrom)
		return err
	})

	switch {
	case errors.Is(err, common.ErrorNotFound):
		s.metrics.Rotation(metrics.OutcomeInvalidToken)
		s.log.Debug(ctx, "rotation rejected", "reason", "absent, expired or consumed")
		return nil, common.ErrInvalidRefreshToken
	case err != nil:
		s.metrics.Rotation(metrics.OutcomeError)
		return nil, fmt.Errorf("error rotating session: %w", err)
	case expired:
		s.metrics.Rotation(metrics.OutcomeSessionExpired)
		s.log.Info(ctx, "session ceiling reached", "principal_id", userID, "session_started_at", chainFrom)
		return nil, common.ErrSessionExpired
	}

	s.metrics.Rotation(metrics.OutcomeOK)
	s.log.Debug(ctx, "session rotated", "principal_id", userID)

	return pair, nil
}

// Logout deletes every refresh token of principalID. Outstanding access
// tokens stay valid until they expire.
func (s *SessionService) Logout(ctx context.Context, principalID string) error {
	if err := validatePrincipalID(principalID); err != nil {
		return err
	}

	n, err := s.repomanager.RefreshTokens(s.db).DeleteAllForUser(ctx, principalID)
	if err != nil {
		return fmt.Errorf("error deleting refresh tokens: %w", err)
	}

	s.metrics.Logout()
	s.log.Info(ctx, "principal logged out", "principal_id", principalID, "revoked", n)
	return nil
}

// VerifyAccess returns the principal id carried by a valid access token.
// The error keeps the failure kind (malformed, expired, invalid) for
// logging; callers at the boundary collapse it.
func (s *SessionService) VerifyAccess(ctx context.Context, accessToken string) (string, error) {
	claims, err := s.issuer.VerifyAccess(accessToken)
	if err != nil {
		s.log.Debug(ctx, "access token rejected", "reason", err.Error())
		return "", err
	}
	return claims.UserID, nil
}

// Principal returns the password-free view of principalID.
func (s *SessionService) Principal(ctx context.Context, principalID string) (*models.PrincipalView, error) {
	if validatePrincipalID(principalID) != nil {
		return nil, common.ErrorNotFound
	}
	p, err := s.repomanager.Users(s.db).FindByID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	view := p.View()
	return &view, nil
}

// issuePair stores a new refresh token anchored at chainFrom and signs an
// access token. It must run inside the caller's transaction.
func (s *SessionService) issuePair(ctx context.Context, tx dbx.DBTX, p *models.Principal, now, chainFrom time.Time) (*TokenPair, error) {
	tokens := s.repomanager.RefreshTokens(tx)

	var rec *models.RefreshToken
	for attempt := 1; ; attempt++ {
		value, err := s.issuer.IssueRefresh()
		if err != nil {
			return nil, err
		}

		rec = &models.RefreshToken{
			Token:            value,
			UserID:           p.ID,
			IssuedAt:         now,
			ExpiresAt:        now.Add(s.refreshTTL),
			SessionStartedAt: chainFrom,
		}

		err = tokens.Create(ctx, rec)
		if err == nil {
			break
		}
		if !errors.Is(err, common.ErrConflict) || attempt == maxRefreshAttempts {
			return nil, fmt.Errorf("error storing refresh token: %w", err)
		}
		s.log.Warn(ctx, "refresh token collision, retrying", "attempt", attempt)
	}

	access, accessExp, err := s.issuer.IssueAccess(p.ID, p.Role)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:           access,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          rec.Token,
		RefreshTokenExpiresAt: rec.ExpiresAt,
	}, nil
}
