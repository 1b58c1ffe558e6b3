package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbx-staffhub/internal/config"
	"rbx-staffhub/internal/core/domain"
)

func newRobloxFixture(t *testing.T, handler http.Handler) *RobloxService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewRobloxService(config.RobloxConfig{
		GroupID:      42,
		UsersAPIURL:  srv.URL,
		GroupsAPIURL: srv.URL,
	})
}

func TestLookupUserByName_Found(t *testing.T) {
	svc := newRobloxFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/usernames/users", r.URL.Path)

		var body usernameLookupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, []string{"builderman"}, body.Usernames)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"requestedUsername": "builderman", "id": 156, "name": "builderman", "displayName": "Builderman"},
			},
		})
	}))

	user, err := svc.LookupUserByName(context.Background(), "builderman")
	require.NoError(t, err)
	assert.EqualValues(t, 156, user.ID)
	assert.Equal(t, "builderman", user.Username)
	assert.Equal(t, "Builderman", user.DisplayName)
}

func TestLookupUserByName_NotFound(t *testing.T) {
	svc := newRobloxFixture(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
	}))

	_, err := svc.LookupUserByName(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrRobloxUserNotFound)
}

func TestLookupUserByName_ServerErrorIsGatewayUnavailable(t *testing.T) {
	svc := newRobloxFixture(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := svc.LookupUserByName(context.Background(), "whoever")
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestFetchProfileText(t *testing.T) {
	svc := newRobloxFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/users/156", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": 156, "name": "builderman", "description": "my code is AbCd1234",
		})
	}))

	text, err := svc.FetchProfileText(context.Background(), 156)
	require.NoError(t, err)
	assert.Equal(t, "my code is AbCd1234", text)
}

func TestFetchProfileText_FailureReturnsEmpty(t *testing.T) {
	svc := newRobloxFixture(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	text, err := svc.FetchProfileText(context.Background(), 156)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	assert.Empty(t, text)
}

func TestFetchGroupRole_MapsRankOfConfiguredGroup(t *testing.T) {
	svc := newRobloxFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/users/156/groups/roles", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"group": map[string]interface{}{"id": 7},
					"role":  map[string]interface{}{"id": 111, "name": "Member", "rank": 1},
				},
				{
					"group": map[string]interface{}{"id": 42},
					"role":  map[string]interface{}{"id": 222, "name": "Supervisor", "rank": 200},
				},
			},
		})
	}))

	role, err := svc.FetchGroupRole(context.Background(), 156, 42)
	require.NoError(t, err)
	assert.Equal(t, 200, role.RoleID)
	assert.Equal(t, "Supervisor", role.RoleName)
}

func TestFetchGroupRole_NotAMember(t *testing.T) {
	svc := newRobloxFixture(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"group": map[string]interface{}{"id": 7},
					"role":  map[string]interface{}{"id": 111, "name": "Member", "rank": 1},
				},
			},
		})
	}))

	_, err := svc.FetchGroupRole(context.Background(), 156, 42)
	assert.ErrorIs(t, err, domain.ErrNotGroupMember)
}
