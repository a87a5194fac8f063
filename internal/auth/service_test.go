package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magangjo/backoffice/internal/common"
	"github.com/magangjo/backoffice/internal/logging"
	"github.com/magangjo/backoffice/internal/medium"
	"github.com/magangjo/backoffice/internal/store"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(t *testing.T) (*Service, *store.Store, *medium.Memory, *testClock) {
	t.Helper()
	mem := medium.NewMemory()
	clock := &testClock{now: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
	st := store.New(mem, logging.NewNop(), store.WithClock(clock.Now))
	svc := NewService(st, logging.NewNop(), []byte("test-secret"), 0)
	return svc, st, mem, clock
}

func TestSignUp_CreatesUserAndDefaultRole(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	pub, err := svc.SignUp(ctx, "ahmad@example.com", "rahasia123", "Ahmad Fauzi")
	require.NoError(t, err)
	require.NotEmpty(t, pub.ID)
	assert.Equal(t, "ahmad@example.com", pub.Email)
	assert.Equal(t, "Ahmad Fauzi", pub.FullName)

	// The stored record carries a hash, never the plain password.
	stored, ok := svc.Users().GetByID(ctx, pub.ID)
	require.True(t, ok)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "rahasia123")

	assert.Equal(t, RoleUser, svc.GetUserRole(ctx, pub.ID))

	// Sign-up does not create a session.
	assert.Nil(t, svc.GetSession(ctx))
}

func TestSignUp_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "ahmad@example.com", "rahasia123", "")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "AHMAD@Example.COM", "lain456", "")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	require.Equal(t, 1, svc.Users().Count(ctx))
}

func TestSignIn_SuccessCreatesSession(t *testing.T) {
	svc, _, _, clock := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "ahmad@example.com", "rahasia123", "Ahmad")
	require.NoError(t, err)

	pub, err := svc.SignIn(ctx, "ahmad@example.com", "rahasia123")
	require.NoError(t, err)

	sess := svc.GetSession(ctx)
	require.NotNil(t, sess)
	assert.Equal(t, "ahmad@example.com", sess.User.Email)
	assert.Equal(t, clock.Now().Add(DefaultSessionTTL).UnixMilli(), sess.ExpiresAt)

	userID, err := UserIDFromToken(sess.AccessToken, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, pub.ID, userID)
}

func TestSignIn_WrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "ahmad@example.com", "rahasia123", "")
	require.NoError(t, err)

	_, errWrongPass := svc.SignIn(ctx, "ahmad@example.com", "salah")
	_, errNoUser := svc.SignIn(ctx, "tidakada@example.com", "rahasia123")

	require.ErrorIs(t, errWrongPass, common.ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, common.ErrInvalidCredentials)
	require.Equal(t, errWrongPass, errNoUser)
	require.Nil(t, svc.GetSession(ctx))
}

func TestGetSession_LazyExpiryDeletesStoredSession(t *testing.T) {
	svc, st, mem, clock := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "ahmad@example.com", "rahasia123", "")
	require.NoError(t, err)
	_, err = svc.SignIn(ctx, "ahmad@example.com", "rahasia123")
	require.NoError(t, err)
	require.NotNil(t, svc.GetSession(ctx))

	clock.Advance(DefaultSessionTTL + time.Minute)

	require.Nil(t, svc.GetSession(ctx))

	// The reserved key must be physically gone after the lazy cleanup.
	raw, err := mem.Get(ctx, st.Key(sessionKey))
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestSignOut_IsIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	svc.SignOut(ctx) // no session at all, must not blow up

	_, err := svc.SignUp(ctx, "ahmad@example.com", "rahasia123", "")
	require.NoError(t, err)
	_, err = svc.SignIn(ctx, "ahmad@example.com", "rahasia123")
	require.NoError(t, err)

	svc.SignOut(ctx)
	require.Nil(t, svc.GetSession(ctx))
	svc.SignOut(ctx)
	require.Nil(t, svc.GetSession(ctx))
}

func TestUpdateUserRole_Upserts(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	pub, err := svc.SignUp(ctx, "ahmad@example.com", "rahasia123", "")
	require.NoError(t, err)
	require.Equal(t, RoleUser, svc.GetUserRole(ctx, pub.ID))

	svc.UpdateUserRole(ctx, pub.ID, RoleAdmin)
	require.Equal(t, RoleAdmin, svc.GetUserRole(ctx, pub.ID))
	require.Equal(t, 1, svc.Roles().Count(ctx))

	// Upsert for a user with no assignment yet creates one.
	svc.UpdateUserRole(ctx, "other-user", RoleUser)
	require.Equal(t, RoleUser, svc.GetUserRole(ctx, "other-user"))
}

func TestGetUserRole_UnknownUserIsEmpty(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	require.Empty(t, svc.GetUserRole(context.Background(), "nobody"))
}

func TestDeleteUser_CascadesRolesAndRevokesSession(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	pub, err := svc.SignUp(ctx, "ahmad@example.com", "rahasia123", "")
	require.NoError(t, err)
	_, err = svc.SignIn(ctx, "ahmad@example.com", "rahasia123")
	require.NoError(t, err)
	svc.UpdateUserRole(ctx, pub.ID, RoleAdmin)

	require.True(t, svc.DeleteUser(ctx, pub.ID))

	require.Equal(t, 0, svc.Users().Count(ctx))
	require.Equal(t, 0, svc.Roles().Count(ctx))
	require.Nil(t, svc.GetSession(ctx))

	require.False(t, svc.DeleteUser(ctx, pub.ID))
}

func TestDeleteUser_LeavesOtherUsersSessionAlone(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	victim, err := svc.SignUp(ctx, "korban@example.com", "rahasia123", "")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "aktif@example.com", "rahasia456", "")
	require.NoError(t, err)
	_, err = svc.SignIn(ctx, "aktif@example.com", "rahasia456")
	require.NoError(t, err)

	require.True(t, svc.DeleteUser(ctx, victim.ID))
	require.NotNil(t, svc.GetSession(ctx))
}

func TestInitializeDefaultAdmin_IsIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	accounts := []AdminAccount{
		{Email: "admin@magangjo.id", Password: "admin#2024", FullName: "Administrator"},
		{Email: "keuangan@magangjo.id", Password: "keuangan#2024", FullName: "Staf Keuangan"},
	}

	created := svc.InitializeDefaultAdmin(ctx, accounts)
	require.Equal(t, 2, created)
	require.Equal(t, 2, svc.Users().Count(ctx))
	require.Equal(t, 2, svc.Roles().Count(ctx))

	created = svc.InitializeDefaultAdmin(ctx, accounts)
	require.Equal(t, 0, created)
	require.Equal(t, 2, svc.Users().Count(ctx))
	require.Equal(t, 2, svc.Roles().Count(ctx))
}

func TestInitializeDefaultAdmin_CreatesOnlyMissingAccounts(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	// One of the admin accounts already exists as a plain user.
	existing, err := svc.SignUp(ctx, "admin@magangjo.id", "their-own-pass", "")
	require.NoError(t, err)

	created := svc.InitializeDefaultAdmin(ctx, []AdminAccount{
		{Email: "admin@magangjo.id", Password: "admin#2024"},
		{Email: "baru@magangjo.id", Password: "baru#2024"},
	})
	require.Equal(t, 1, created)
	require.Equal(t, 2, svc.Users().Count(ctx))

	// The pre-existing account was not recreated or re-hashed.
	_, err = svc.SignIn(ctx, "admin@magangjo.id", "their-own-pass")
	require.NoError(t, err)
	require.Equal(t, RoleUser, svc.GetUserRole(ctx, existing.ID))
}

func TestBootstrappedAdmin_CanSignIn(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	svc.InitializeDefaultAdmin(ctx, DefaultAdmins)

	pub, err := svc.SignIn(ctx, DefaultAdmins[0].Email, DefaultAdmins[0].Password)
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, svc.GetUserRole(ctx, pub.ID))
}
