package service

import (
	"context"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/futebolada/futebolada-server/internal/mocks"
	"github.com/futebolada/futebolada-server/pool"
)

type srvMocks struct {
	ar *mocks.MockAdminRepo
	pr *mocks.MockPlayerRepo
	wr *mocks.MockWeekRepo
}

func newTestService(t *testing.T) (*Service, srvMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := srvMocks{
		ar: mocks.NewMockAdminRepo(ctrl),
		pr: mocks.NewMockPlayerRepo(ctrl),
		wr: mocks.NewMockWeekRepo(ctrl),
	}
	return New(m.ar, m.pr, m.wr), m
}

func TestRegisterAdminValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		role     string
		wantErr  error
	}{
		{
			name:     "blank username",
			username: "",
			password: "pw",
			wantErr:  errEmptyField("username"),
		},
		{
			name:     "whitespace username",
			username: "   ",
			password: "pw",
			wantErr:  errEmptyField("username"),
		},
		{
			name:     "username checked before password",
			username: " ",
			password: "",
			wantErr:  errEmptyField("username"),
		},
		{
			name:     "blank password",
			username: "boss",
			password: "  ",
			wantErr:  errEmptyField("password"),
		},
		{
			name:     "unknown role",
			username: "boss",
			password: "pw",
			role:     "superuser",
			wantErr:  errInvalidValue("role"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestService(t)
			_, err := srv.RegisterAdmin(context.Background(), tt.username, tt.password, tt.role)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestRegisterAdminUsernameInUse(t *testing.T) {
	srv, m := newTestService(t)
	username := gofakeit.Username()
	m.ar.EXPECT().GetByUsername(gomock.Any(), strings.ToLower(username)).
		Return(&pool.Admin{ID: 1, Username: username}, nil)

	_, err := srv.RegisterAdmin(context.Background(), username, "pw", "")
	assert.Equal(t, errUsernameInUse(username), err)
}

func TestRegisterAdmin(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantRole pool.Role
	}{
		{name: "role defaults to read-only", role: "", wantRole: pool.RoleReadOnly},
		{name: "explicit read-only", role: "read-only", wantRole: pool.RoleReadOnly},
		{name: "explicit admin", role: "admin", wantRole: pool.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestService(t)
			username, password := gofakeit.Username(), gofakeit.Password(true, true, true, false, false, 12)
			m.ar.EXPECT().GetByUsername(gomock.Any(), strings.ToLower(username)).Return(nil, nil)
			m.ar.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, admin pool.Admin) (int, error) {
					assert.Equal(t, username, admin.Username)
					assert.Equal(t, tt.wantRole, admin.Role)
					// the stored password is a hash of the plaintext
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)))
					return 10, nil
				})

			admin, err := srv.RegisterAdmin(context.Background(), username, password, tt.role)
			require.NoError(t, err)
			assert.Equal(t, 10, admin.ID)
			assert.Equal(t, tt.wantRole, admin.Role)
		})
	}
}

// Unknown usernames and wrong passwords must be indistinguishable.
func TestAdminByCredentialsCollapse(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mockFn func(m srvMocks)
	}{
		{
			name: "unknown username",
			mockFn: func(m srvMocks) {
				m.ar.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
		},
		{
			name: "wrong password",
			mockFn: func(m srvMocks) {
				m.ar.EXPECT().GetByUsername(gomock.Any(), "ghost").
					Return(&pool.Admin{ID: 1, Username: "ghost", Password: string(hash)}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestService(t)
			tt.mockFn(m)
			_, err := srv.AdminByCredentials(context.Background(), "ghost", "wrong")
			assert.Equal(t, ErrWrongCredentials, err)
		})
	}
}

func TestAdminByCredentials(t *testing.T) {
	srv, m := newTestService(t)
	password := gofakeit.Password(true, true, true, false, false, 12)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	stored := pool.Admin{ID: 3, Username: "Boss", Password: string(hash), Role: pool.RoleAdmin}
	m.ar.EXPECT().GetByUsername(gomock.Any(), "boss").Return(&stored, nil)

	admin, err := srv.AdminByCredentials(context.Background(), "bOSS", password)
	require.NoError(t, err)
	assert.Equal(t, &stored, admin)
}

// Usernames are case-insensitive: every spelling of a name must resolve
// to the same account, for logins and for the registration uniqueness
// check alike.
func TestUsernameLookupCaseInsensitive(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	for _, spelling := range []string{"boss", "Boss", "BOSS", "bOsS"} {
		t.Run("admin login "+spelling, func(t *testing.T) {
			srv, m := newTestService(t)
			stored := pool.Admin{ID: 3, Username: "Boss", Password: string(hash), Role: pool.RoleAdmin}
			m.ar.EXPECT().GetByUsername(gomock.Any(), "boss").Return(&stored, nil)

			admin, err := srv.AdminByCredentials(context.Background(), spelling, "pw")
			require.NoError(t, err)
			assert.Equal(t, 3, admin.ID)
		})

		t.Run("player login "+spelling, func(t *testing.T) {
			srv, m := newTestService(t)
			stored := pool.Player{ID: 5, Username: "Boss", Password: string(hash)}
			m.pr.EXPECT().GetByUsername(gomock.Any(), "boss").Return(&stored, nil)

			player, err := srv.PlayerByCredentials(context.Background(), spelling, "pw")
			require.NoError(t, err)
			assert.Equal(t, 5, player.ID)
		})

		t.Run("register duplicate "+spelling, func(t *testing.T) {
			srv, m := newTestService(t)
			m.ar.EXPECT().GetByUsername(gomock.Any(), "boss").
				Return(&pool.Admin{ID: 3, Username: "Boss"}, nil)

			_, err := srv.RegisterAdmin(context.Background(), spelling, "pw", "")
			assert.Equal(t, errUsernameInUse(spelling), err)
		})
	}
}

func TestAdminByCredentialsValidation(t *testing.T) {
	srv, _ := newTestService(t)
	_, err := srv.AdminByCredentials(context.Background(), "", "pw")
	assert.Equal(t, errEmptyField("username"), err)
	_, err = srv.AdminByCredentials(context.Background(), "boss", " ")
	assert.Equal(t, errEmptyField("password"), err)
}

func TestPlayerByCredentials(t *testing.T) {
	password := gofakeit.Password(true, true, true, false, false, 12)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	stored := pool.Player{ID: 5, Username: "striker", Password: string(hash)}

	tests := []struct {
		name     string
		password string
		mockFn   func(m srvMocks)
		wantErr  error
	}{
		{
			name:     "success",
			password: password,
			mockFn: func(m srvMocks) {
				m.pr.EXPECT().GetByUsername(gomock.Any(), "striker").Return(&stored, nil)
			},
		},
		{
			name:     "unknown username",
			password: password,
			mockFn: func(m srvMocks) {
				m.pr.EXPECT().GetByUsername(gomock.Any(), "striker").Return(nil, nil)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:     "wrong password",
			password: "nope",
			mockFn: func(m srvMocks) {
				m.pr.EXPECT().GetByUsername(gomock.Any(), "striker").Return(&stored, nil)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:     "blank password",
			password: "",
			wantErr:  errEmptyField("password"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestService(t)
			if tt.mockFn != nil {
				tt.mockFn(m)
			}
			player, err := srv.PlayerByCredentials(context.Background(), "striker", tt.password)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &stored, player)
		})
	}
}

func TestDeleteAdmin(t *testing.T) {
	tests := []struct {
		name    string
		deleted bool
		wantErr error
	}{
		{name: "deleted", deleted: true},
		{name: "missing id", deleted: false, wantErr: errIDNotFound(9, "admin")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestService(t)
			m.ar.EXPECT().Delete(gomock.Any(), 9).Return(tt.deleted, nil)
			err := srv.DeleteAdmin(context.Background(), 9)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestChangePlayerPassword(t *testing.T) {
	t.Run("blank password", func(t *testing.T) {
		srv, _ := newTestService(t)
		err := srv.ChangePlayerPassword(context.Background(), 1, "  ")
		assert.Equal(t, errEmptyField("password"), err)
	})

	t.Run("updates own row with a hash", func(t *testing.T) {
		srv, m := newTestService(t)
		password := gofakeit.Password(true, true, true, false, false, 12)
		m.pr.EXPECT().UpdatePassword(gomock.Any(), 1, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, hash string) (bool, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)))
				return true, nil
			})
		require.NoError(t, srv.ChangePlayerPassword(context.Background(), 1, password))
	})

	t.Run("missing row", func(t *testing.T) {
		srv, m := newTestService(t)
		m.pr.EXPECT().UpdatePassword(gomock.Any(), 2, gomock.Any()).Return(false, nil)
		err := srv.ChangePlayerPassword(context.Background(), 2, "pw")
		assert.Equal(t, errIDNotFound(2, "player"), err)
	})
}

func TestResetPlayerPassword(t *testing.T) {
	t.Run("missing player", func(t *testing.T) {
		srv, m := newTestService(t)
		m.pr.EXPECT().GetByID(gomock.Any(), 404).Return(nil, nil)
		err := srv.ResetPlayerPassword(context.Background(), 404)
		assert.Equal(t, errIDNotFound(404, "player"), err)
	})

	t.Run("resets to the player's username", func(t *testing.T) {
		srv, m := newTestService(t)
		player := pool.Player{ID: 6, Username: "Keeper"}
		var stored string
		m.pr.EXPECT().GetByID(gomock.Any(), 6).Return(&player, nil)
		m.pr.EXPECT().UpdatePassword(gomock.Any(), 6, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, hash string) (bool, error) {
				stored = hash
				return true, nil
			})
		require.NoError(t, srv.ResetPlayerPassword(context.Background(), 6))
		require.NotEmpty(t, stored)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(player.Username)))

		// a login with password == username now succeeds
		player.Password = stored
		m.pr.EXPECT().GetByUsername(gomock.Any(), "keeper").Return(&player, nil)
		got, err := srv.PlayerByCredentials(context.Background(), "Keeper", "Keeper")
		require.NoError(t, err)
		assert.Equal(t, 6, got.ID)
	})
}
