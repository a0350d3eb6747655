package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

type authRepoStub struct {
	users            map[string]*models.User
	findErr          error
	created          []*models.User
	lastLoginUpdated bool
}

func newAuthRepoStub(users ...*models.User) *authRepoStub {
	stub := &authRepoStub{users: make(map[string]*models.User)}
	for _, u := range users {
		stub.users[u.Email] = u
	}
	return stub
}

func (s *authRepoStub) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (s *authRepoStub) FindByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *authRepoStub) UpdateLastLogin(context.Context, int64, time.Time) error {
	s.lastLoginUpdated = true
	return nil
}

func (s *authRepoStub) Create(_ context.Context, user *models.User) error {
	user.ID = int64(len(s.users) + 1)
	s.users[user.Email] = user
	s.created = append(s.created, user)
	return nil
}

func hashedUser(t *testing.T, password string, active bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           11,
		Email:        "admin@fleet.test",
		PasswordHash: string(hash),
		FullName:     "Fleet Admin",
		Role:         models.RoleOrganisationAdmin,
		Active:       active,
	}
}

func newTestAuthService(repo authUserRepository) *AuthService {
	return NewAuthService(repo, nil, nil, AuthConfig{
		AccessTokenSecret: "test-secret",
		AccessTokenExpiry: 15 * time.Minute,
		Issuer:            "fleet-test",
	})
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newAuthRepoStub(hashedUser(t, "s3cret!", true))
	svc := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: " Admin@Fleet.test ", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.EqualValues(t, 900, resp.ExpiresIn)
	assert.Equal(t, int64(11), resp.User.ID)
	assert.True(t, repo.lastLoginUpdated)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(11), claims.UserID)
	assert.Equal(t, models.RoleOrganisationAdmin, claims.Role)
	assert.Equal(t, "fleet-test", claims.Issuer)
	assert.Equal(t, "11", claims.Subject)
	assert.True(t, claims.HasRole(models.AdminRoles...))
}

func TestLoginRejections(t *testing.T) {
	active := hashedUser(t, "s3cret!", true)

	cases := []struct {
		name   string
		repo   *authRepoStub
		req    models.LoginRequest
		target *appErrors.Error
	}{
		{name: "bad payload", repo: newAuthRepoStub(), req: models.LoginRequest{Email: "nope"}, target: appErrors.ErrValidation},
		{name: "unknown email", repo: newAuthRepoStub(), req: models.LoginRequest{Email: "ghost@fleet.test", Password: "x"}, target: appErrors.ErrInvalidCredentials},
		{name: "wrong password", repo: newAuthRepoStub(active), req: models.LoginRequest{Email: active.Email, Password: "guess"}, target: appErrors.ErrInvalidCredentials},
		{name: "inactive", repo: newAuthRepoStub(hashedUser(t, "s3cret!", false)), req: models.LoginRequest{Email: active.Email, Password: "s3cret!"}, target: appErrors.ErrInactiveAccount},
		{name: "store down", repo: &authRepoStub{findErr: errors.New("dial tcp"), users: map[string]*models.User{}}, req: models.LoginRequest{Email: active.Email, Password: "x"}, target: appErrors.ErrInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTestAuthService(tc.repo).Login(context.Background(), tc.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.target), "got %v", err)
		})
	}
}

func TestValidateTokenRejectsTamperedAndExpired(t *testing.T) {
	repo := newAuthRepoStub(hashedUser(t, "s3cret!", true))
	svc := newTestAuthService(repo)
	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@fleet.test", Password: "s3cret!"})
	require.NoError(t, err)

	other := NewAuthService(repo, nil, nil, AuthConfig{AccessTokenSecret: "other", AccessTokenExpiry: time.Minute})
	_, err = other.ValidateToken(resp.AccessToken)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = svc.ValidateToken(resp.AccessToken)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	repo := newAuthRepoStub()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureBootstrapAdmin(ctx, "", "ignored"))
	assert.Empty(t, repo.created)

	require.NoError(t, svc.EnsureBootstrapAdmin(ctx, "Root@Fleet.test", "changeme"))
	require.Len(t, repo.created, 1)
	admin := repo.created[0]
	assert.Equal(t, "root@fleet.test", admin.Email)
	assert.Equal(t, models.RoleSystemAdmin, admin.Role)
	assert.True(t, admin.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("changeme")))

	require.NoError(t, svc.EnsureBootstrapAdmin(ctx, "root@fleet.test", "changeme"))
	assert.Len(t, repo.created, 1)

	info, err := svc.Me(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "root@fleet.test", info.Email)
}
