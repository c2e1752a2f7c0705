package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/ports"
)

// apiKeyPrefix makes raw keys recognisable to operators in logs and
// consoles without weakening them.
const apiKeyPrefix = "ak_"

// UsageSink receives fire-and-forget lastUsedAt updates. Implementations
// must not block the caller.
type UsageSink interface {
	RecordUsage(id string, at time.Time)
}

// APIKeyService manages static API key credentials.
type APIKeyService struct {
	keys  ports.APIKeyRepository
	users ports.UserRepository
	roles ports.RoleRepository
	usage UsageSink
	log   zerolog.Logger
	now   func() time.Time
}

func NewAPIKeyService(keys ports.APIKeyRepository, users ports.UserRepository, roles ports.RoleRepository, usage UsageSink, log zerolog.Logger) *APIKeyService {
	return &APIKeyService{
		keys:  keys,
		users: users,
		roles: roles,
		usage: usage,
		log:   log,
		now:   time.Now,
	}
}

// GenerateKey produces a 256-bit random key as ak_<64 hex chars>.
func GenerateKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	return apiKeyPrefix + hex.EncodeToString(buf), nil
}

// HashKey returns the hex SHA-256 digest of a raw key. Deterministic: the
// same digest serves both storage and lookup equality, so the raw key is
// never stored or compared directly.
func HashKey(rawKey string) string {
	sum := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}

// Create mints a key for the user and returns the raw value exactly once.
func (s *APIKeyService) Create(ctx context.Context, userID, name string) (*domain.APIKey, string, error) {
	rawKey, err := GenerateKey()
	if err != nil {
		return nil, "", err
	}

	key := &domain.APIKey{
		Name:      name,
		HashedKey: HashKey(rawKey),
		UserID:    userID,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.keys.Insert(ctx, key)
	if err != nil {
		return nil, "", err
	}
	return created, rawKey, nil
}

func (s *APIKeyService) List(ctx context.Context, userID string) ([]domain.APIKey, error) {
	return s.keys.ListByUser(ctx, userID)
}

func (s *APIKeyService) Delete(ctx context.Context, userID, id string) error {
	return s.keys.Delete(ctx, id, userID)
}

// Authenticate resolves a raw key to its owner. Usage recording happens off
// the request path and cannot fail the decision.
func (s *APIKeyService) Authenticate(ctx context.Context, rawKey string) (*domain.User, error) {
	key, err := s.keys.FindByHash(ctx, HashKey(rawKey))
	if err != nil {
		if !errors.Is(err, domain.ErrAPIKeyNotFound) {
			s.log.Error().Err(err).Msg("api key lookup failed")
		}
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, key.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Err(err).Msg("api key owner lookup failed")
		}
		return nil, domain.ErrIdentityNotFound
	}

	if user.RoleID != "" {
		if role, err := s.roles.FindByID(ctx, user.RoleID); err == nil {
			user.Role = role
		} else {
			s.log.Warn().Err(err).Str("role_id", user.RoleID).Msg("role lookup failed")
		}
	}

	s.usage.RecordUsage(key.ID, s.now().UTC())
	return user, nil
}
