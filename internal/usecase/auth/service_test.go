package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entities.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entities.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			now := time.Now()
			u.LastLoginAt = &now
			return nil
		}
	}
	return entities.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return entities.ErrUserNotFound
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tokens := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewService(repo, tokens, nil), repo
}

func TestRegister_CreatesUserWithHashedPassword(t *testing.T) {
	svc, repo := newTestService()

	pair, err := svc.Register(context.Background(), "sarah@example.com", "Sarah", "s3cret-pass")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	stored := repo.byEmail["sarah@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "sarah@example.com", "Sarah", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "sarah@example.com", "Other", "other-pass")
	require.Error(t, err)
}

func TestLogin_Succeeds(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Register(context.Background(), "mike@example.com", "Mike", "correct-horse")
	require.NoError(t, err)

	pair, err := svc.Login(context.Background(), "mike@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotNil(t, repo.byEmail["mike@example.com"].LastLoginAt)
}

func TestLogin_RejectsWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "mike@example.com", "Mike", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "mike@example.com", "wrong-horse")
	require.Error(t, err)
}

func TestLogin_RejectsUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever1")
	require.Error(t, err)
}

func TestLogin_RejectsInactiveUser(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Register(context.Background(), "lisa@example.com", "Lisa", "valid-pass1")
	require.NoError(t, err)
	repo.byEmail["lisa@example.com"].IsActive = false

	_, err = svc.Login(context.Background(), "lisa@example.com", "valid-pass1")
	require.Error(t, err)
}

func TestRefresh_IssuesNewTokens(t *testing.T) {
	svc, _ := newTestService()

	pair, err := svc.Register(context.Background(), "emma@example.com", "Emma", "initial-pass")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, pair.User.ID, refreshed.User.ID)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)
}
