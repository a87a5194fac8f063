package auth

import (
	"context"
	"strings"
	"time"

	"github.com/magangjo/backoffice/internal/common"
	"github.com/magangjo/backoffice/internal/logging"
	"github.com/magangjo/backoffice/internal/store"
)

// Collection names and the reserved session key. The session lives
// outside the generic collections: it is a single value, not an array.
const (
	UsersCollection = "local_users"
	RolesCollection = "local_user_roles"
	sessionKey      = "current_session"
)

// DefaultSessionTTL is how long a session stays valid after sign-in.
const DefaultSessionTTL = 24 * time.Hour

// Service manages credential records, role assignments, and the single
// active session. Business-rule violations come back as sentinel errors
// (common.ErrDuplicateEmail, common.ErrInvalidCredentials) so callers can
// render inline messages; nothing here panics or crashes the process.
type Service struct {
	store  *store.Store
	users  *store.Collection[*LocalUser]
	roles  *store.Collection[*LocalUserRole]
	logger logging.Logger
	secret []byte
	ttl    time.Duration
}

// NewService wires the subsystem onto s. secret signs session access
// tokens; ttl <= 0 selects DefaultSessionTTL.
func NewService(s *store.Store, logger logging.Logger, secret []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		store:  s,
		users:  store.NewCollection[*LocalUser](s, UsersCollection),
		roles:  store.NewCollection[*LocalUserRole](s, RolesCollection),
		logger: logger.With("component", "auth"),
		secret: secret,
		ttl:    ttl,
	}
}

// Users exposes the credential collection for administration screens.
func (s *Service) Users() *store.Collection[*LocalUser] { return s.users }

// Roles exposes the role-assignment collection.
func (s *Service) Roles() *store.Collection[*LocalUserRole] { return s.roles }

func (s *Service) findByEmail(ctx context.Context, email string) *LocalUser {
	for _, u := range s.users.GetAll(ctx) {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// SignUp creates a credential record with a salted argon2id hash and a
// default "user" role assignment. A case-insensitive email match fails
// with common.ErrDuplicateEmail. No session is created; the caller signs
// in separately.
func (s *Service) SignUp(ctx context.Context, email, password, fullName string) (*PublicUser, error) {
	email = strings.TrimSpace(email)

	if existing := s.findByEmail(ctx, email); existing != nil {
		return nil, common.ErrDuplicateEmail
	}

	hash, err := HashPassword([]byte(password))
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "err", err)
		return nil, common.ErrInternal
	}

	user := s.users.Create(ctx, &LocalUser{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
	})
	s.roles.Create(ctx, &LocalUserRole{UserID: user.ID, Role: RoleUser})

	pub := user.Public()
	return &pub, nil
}

// SignIn verifies the credentials and, on success, persists a fresh
// session with a signed access token valid for the configured TTL.
// Unknown email and wrong password return the same
// common.ErrInvalidCredentials so neither case leaks which check failed.
func (s *Service) SignIn(ctx context.Context, email, password string) (*PublicUser, error) {
	user := s.findByEmail(ctx, strings.TrimSpace(email))
	if user == nil {
		return nil, common.ErrInvalidCredentials
	}
	if !VerifyPassword(user.PasswordHash, []byte(password)) {
		return nil, common.ErrInvalidCredentials
	}

	now := s.store.Now()
	token, err := GenerateToken(user.ID, s.secret, now, s.ttl)
	if err != nil {
		s.logger.Error(ctx, "access token generation failed", "err", err)
		return nil, common.ErrInternal
	}

	sess := Session{
		User:        user.Public(),
		AccessToken: token,
		ExpiresAt:   now.Add(s.ttl).UnixMilli(),
	}
	store.SetValue(ctx, s.store, sessionKey, sess)

	pub := user.Public()
	return &pub, nil
}

// SignOut clears the session unconditionally. Safe to call with no
// active session.
func (s *Service) SignOut(ctx context.Context) {
	s.store.DeleteValue(ctx, sessionKey)
}

// GetSession returns the active session, or nil. An expired session is
// deleted on the spot before nil is returned (lazy expiry; there is no
// background timer).
func (s *Service) GetSession(ctx context.Context) *Session {
	sess, ok := store.GetValue[Session](ctx, s.store, sessionKey)
	if !ok {
		return nil
	}
	if sess.ExpiresAt <= s.store.Now().UnixMilli() {
		s.store.DeleteValue(ctx, sessionKey)
		return nil
	}
	return &sess
}

// GetUserRole returns the first role assigned to the user, or "" when
// none exists.
func (s *Service) GetUserRole(ctx context.Context, userID string) string {
	role, ok := s.roles.GetOneByField(ctx, "user_id", userID)
	if !ok {
		return ""
	}
	return role.Role
}

// UpdateUserRole upserts the user's role: the first existing assignment
// is overwritten, otherwise a new one is created.
func (s *Service) UpdateUserRole(ctx context.Context, userID, role string) {
	if existing, ok := s.roles.GetOneByField(ctx, "user_id", userID); ok {
		s.roles.Update(ctx, existing.ID, func(r *LocalUserRole) { r.Role = role })
		return
	}
	s.roles.Create(ctx, &LocalUserRole{UserID: userID, Role: role})
}

// DeleteUser removes the credential record, every role assignment for
// the user, and, if the active session belongs to them, the session too.
// Reports whether a credential record was actually removed.
func (s *Service) DeleteUser(ctx context.Context, userID string) bool {
	deleted := s.users.Delete(ctx, userID)

	for _, r := range s.roles.Query(ctx, func(r *LocalUserRole) bool { return r.UserID == userID }) {
		s.roles.Delete(ctx, r.ID)
	}

	if sess := s.GetSession(ctx); sess != nil && sess.User.ID == userID {
		s.store.DeleteValue(ctx, sessionKey)
	}

	return deleted
}
