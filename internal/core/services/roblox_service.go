package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"rbx-staffhub/internal/config"
	"rbx-staffhub/internal/core/domain"
)

// RobloxService calls the Roblox Web API. Plain remote calls, no retries;
// every transport or 5xx failure surfaces as domain.ErrGatewayUnavailable.
type RobloxService struct {
	usersAPI  string
	groupsAPI string
	client    *http.Client
}

// NewRobloxService creates a new Roblox gateway client
func NewRobloxService(cfg config.RobloxConfig) *RobloxService {
	return &RobloxService{
		usersAPI:  cfg.UsersAPIURL,
		groupsAPI: cfg.GroupsAPIURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// usernameLookupRequest is the POST body for the username resolution endpoint
type usernameLookupRequest struct {
	Usernames          []string `json:"usernames"`
	ExcludeBannedUsers bool     `json:"excludeBannedUsers"`
}

// usernameLookupResponse wraps the username resolution results
type usernameLookupResponse struct {
	Data []struct {
		RequestedUsername string `json:"requestedUsername"`
		ID                int64  `json:"id"`
		Name              string `json:"name"`
		DisplayName       string `json:"displayName"`
	} `json:"data"`
}

// userDetailResponse is the user detail payload (profile text lives in Description)
type userDetailResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

// groupRolesResponse wraps a user's group role memberships
type groupRolesResponse struct {
	Data []struct {
		Group struct {
			ID int64 `json:"id"`
		} `json:"group"`
		Role struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			Rank int    `json:"rank"`
		} `json:"role"`
	} `json:"data"`
}

// LookupUserByName resolves a username to a stable numeric user id
func (s *RobloxService) LookupUserByName(ctx context.Context, name string) (*domain.RobloxUser, error) {
	payload, err := json.Marshal(usernameLookupRequest{
		Usernames:          []string{name},
		ExcludeBannedUsers: true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/usernames/users", s.usersAPI)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var result usernameLookupResponse
	if err := s.do(req, &result); err != nil {
		return nil, err
	}

	if len(result.Data) == 0 {
		return nil, domain.ErrRobloxUserNotFound
	}

	u := result.Data[0]
	return &domain.RobloxUser{
		ID:          u.ID,
		Username:    u.Name,
		DisplayName: u.DisplayName,
	}, nil
}

// FetchProfileText returns the user's "about me" profile field
func (s *RobloxService) FetchProfileText(ctx context.Context, userID int64) (string, error) {
	url := fmt.Sprintf("%s/v1/users/%d", s.usersAPI, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	var result userDetailResponse
	if err := s.do(req, &result); err != nil {
		return "", err
	}

	return result.Description, nil
}

// FetchGroupRole returns the user's role within one group
func (s *RobloxService) FetchGroupRole(ctx context.Context, userID int64, groupID int64) (*domain.GroupRole, error) {
	url := fmt.Sprintf("%s/v2/users/%d/groups/roles", s.groupsAPI, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var result groupRolesResponse
	if err := s.do(req, &result); err != nil {
		return nil, err
	}

	for _, membership := range result.Data {
		if membership.Group.ID == groupID {
			return &domain.GroupRole{
				RoleID:   membership.Role.Rank,
				RoleName: membership.Role.Name,
			}, nil
		}
	}

	return nil, domain.ErrNotGroupMember
}

// do executes a request and decodes the JSON body into out
func (s *RobloxService) do(req *http.Request, out interface{}) error {
	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("⚠️ Roblox API unreachable: %s %s: %v", req.Method, req.URL.Path, err)
		return domain.ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ErrGatewayUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ Roblox API error: %s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
		return domain.ErrGatewayUnavailable
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domain.ErrGatewayUnavailable
	}

	return nil
}
