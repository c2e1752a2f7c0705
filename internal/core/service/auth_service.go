package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/ports"
)

// AuthService implements registration, login, password changes, and bearer
// token authentication.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	tokens *TokenService
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		roles:  roles,
		tokens: tokens,
		log:    log,
		now:    time.Now,
	}
}

// Register creates an account with the default USER role and returns a
// freshly minted token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	var role *domain.Role
	roleID := ""
	if role, err = s.roles.FindByName(ctx, domain.RoleUser); err != nil {
		// An account without a role has no capabilities but can exist.
		s.log.Warn().Err(err).Msg("default role missing, registering user without role")
		role = nil
	} else {
		roleID = role.ID
	}

	now := s.now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}
	created.Role = role

	token, err := s.tokens.Generate(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies the password and mints a token. Unknown email and wrong
// password both surface as ErrInvalidCredentials. The login attempt is
// stamped before the verdict, success or not.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Err(err).Msg("login lookup failed")
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.users.RecordLoginAttempt(ctx, user.ID, s.now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record login attempt")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	s.loadRole(ctx, user)
	if user.Role != nil && !user.Role.Can(domain.CapPostLogin) {
		return "", nil, domain.ErrForbidden
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ChangePassword verifies the current password and stamps
// passwordChangedAt, which retroactively invalidates every token issued
// before the change.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}
	if currentPassword == newPassword {
		return domain.ErrPasswordUnchanged
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, string(hash), s.now().UTC())
}

// AuthenticateToken resolves a bearer token to its identity: verify
// signature and expiry, reject tokens issued before the account's last
// password change, then load the role. Repository failures surface as
// generic authentication errors.
func (s *AuthService) AuthenticateToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Err(err).Msg("identity lookup failed")
		}
		return nil, domain.ErrIdentityNotFound
	}

	if IsStale(user.PasswordChangedAt, claims.IssuedAt.Time) {
		return nil, domain.ErrStaleToken
	}

	s.loadRole(ctx, user)
	return user, nil
}

// loadRole attaches the user's role. A missing role record is not an
// authentication failure; the user simply has no capabilities.
func (s *AuthService) loadRole(ctx context.Context, user *domain.User) {
	if user.RoleID == "" {
		return
	}
	role, err := s.roles.FindByID(ctx, user.RoleID)
	if err != nil {
		s.log.Warn().Err(err).Str("role_id", user.RoleID).Msg("role lookup failed")
		return
	}
	user.Role = role
}
