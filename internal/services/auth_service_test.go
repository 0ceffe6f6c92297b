package services

import (
	"testing"
	"time"

	"github.com/markoco14/ennytime-sub000/internal/models"
	"github.com/markoco14/ennytime-sub000/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
	)
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, session, err := svc.Signup(SignupInput{
		Email:    "Alice@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email, "email is normalized")
	require.Equal(t, "alice", user.DisplayName, "display name defaults to the mailbox")
	require.NotEmpty(t, session.Token)
	require.True(t, session.ExpiresAt.After(time.Now()))

	_, _, err = svc.Signup(SignupInput{Email: "alice@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, _, err = svc.Login(LoginInput{Email: "alice@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	loggedIn, loginSession, err := svc.Login(LoginInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)
	require.NotEqual(t, session.Token, loginSession.Token, "each login opens its own session")
}

func TestAuthService_Signup_PasswordTooShort(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, _, err := svc.Signup(SignupInput{Email: "alice@example.com", Password: "short"})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_ResolveSession(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, session, err := svc.Signup(SignupInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	resolved, err := svc.ResolveSession(session.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)

	_, err = svc.ResolveSession("no-such-token")
	require.ErrorIs(t, err, ErrSessionInvalid)

	_, err = svc.ResolveSession("")
	require.ErrorIs(t, err, ErrSessionInvalid)
}

func TestAuthService_ResolveSession_Expired(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, session, err := svc.Signup(SignupInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	// Push the expiry into the past; the row itself remains in storage.
	require.NoError(t, db.Model(&models.Session{}).
		Where("token = ?", session.Token).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	_, err = svc.ResolveSession(session.Token)
	require.ErrorIs(t, err, ErrSessionInvalid, "expired sessions are treated as absent")

	// And the expired row is cleaned up on the way.
	var count int64
	require.NoError(t, db.Model(&models.Session{}).Where("token = ?", session.Token).Count(&count).Error)
	require.Zero(t, count)
}

func TestAuthService_PurgeExpiredSessions(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, expired, err := svc.Signup(SignupInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	_, live, err := svc.Login(LoginInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Session{}).
		Where("token = ?", expired.Token).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	require.NoError(t, svc.PurgeExpiredSessions())

	var tokens []string
	require.NoError(t, db.Model(&models.Session{}).Pluck("token", &tokens).Error)
	require.Equal(t, []string{live.Token}, tokens)
}

func TestAuthService_Logout(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, session, err := svc.Signup(SignupInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(session.Token))

	_, err = svc.ResolveSession(session.Token)
	require.ErrorIs(t, err, ErrSessionInvalid)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, _, err := svc.Signup(SignupInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	displayName := "Alice Liddell"
	username := "alice"
	birthday := time.Date(1990, time.May, 4, 12, 30, 0, 0, time.Local)

	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{
		DisplayName: &displayName,
		Username:    &username,
		Birthday:    &birthday,
	})
	require.NoError(t, err)
	require.Equal(t, "Alice Liddell", updated.DisplayName)
	require.NotNil(t, updated.Username)
	require.Equal(t, "alice", *updated.Username)
	require.NotNil(t, updated.Birthday)
	require.Equal(t, time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC), *updated.Birthday,
		"birthday is stored at day granularity")

	// Username uniqueness.
	other, _, err := svc.Signup(SignupInput{Email: "bob@example.com", Password: "supersecret"})
	require.NoError(t, err)
	_, err = svc.UpdateProfile(other.ID, UpdateProfileInput{Username: &username})
	require.ErrorIs(t, err, ErrUsernameTaken)

	// Empty display name rejected.
	empty := "  "
	_, err = svc.UpdateProfile(user.ID, UpdateProfileInput{DisplayName: &empty})
	require.ErrorIs(t, err, ErrDisplayNameRequired)

	// Birthday can be cleared.
	cleared, err := svc.UpdateProfile(user.ID, UpdateProfileInput{ClearBirthday: true})
	require.NoError(t, err)
	require.Nil(t, cleared.Birthday)
}
