package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/core/domain"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	return db
}

// fakeGateway is an in-memory RobloxGateway for service tests
type fakeGateway struct {
	users    map[string]*domain.RobloxUser // keyed by username
	profiles map[int64]string              // keyed by user id
	roles    map[int64]*domain.GroupRole   // keyed by user id

	userErr    error
	profileErr error
	roleErr    error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		users:    make(map[string]*domain.RobloxUser),
		profiles: make(map[int64]string),
		roles:    make(map[int64]*domain.GroupRole),
	}
}

func (g *fakeGateway) addUser(username string, id int64, rank int) {
	g.users[username] = &domain.RobloxUser{ID: id, Username: username, DisplayName: username}
	g.roles[id] = &domain.GroupRole{RoleID: rank, RoleName: domain.RankLabelFor(rank)}
}

func (g *fakeGateway) LookupUserByName(_ context.Context, name string) (*domain.RobloxUser, error) {
	if g.userErr != nil {
		return nil, g.userErr
	}
	u, ok := g.users[name]
	if !ok {
		return nil, domain.ErrRobloxUserNotFound
	}
	return u, nil
}

func (g *fakeGateway) FetchProfileText(_ context.Context, userID int64) (string, error) {
	if g.profileErr != nil {
		return "", g.profileErr
	}
	return g.profiles[userID], nil
}

func (g *fakeGateway) FetchGroupRole(_ context.Context, userID int64, _ int64) (*domain.GroupRole, error) {
	if g.roleErr != nil {
		return nil, g.roleErr
	}
	r, ok := g.roles[userID]
	if !ok {
		return nil, domain.ErrNotGroupMember
	}
	return r, nil
}
