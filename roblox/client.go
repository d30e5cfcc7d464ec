package roblox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	cookieName       = ".ROBLOSECURITY"
	csrfHeader       = "X-CSRF-TOKEN"
	guestRankName    = "Guest"
	maxErrorBodySize = 4096
)

// HTTPClient is the subset of *http.Client the client needs
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the endpoints and credential for the Roblox web APIs
type Config struct {
	Cookie       string
	UsersAPIURL  string
	GroupsAPIURL string
	Timeout      time.Duration
}

// APIError is a non-2xx answer from a Roblox API
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("roblox %s %s returned %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Client talks to the Roblox users and groups APIs
type Client struct {
	config     Config
	httpClient HTTPClient

	mu        sync.Mutex
	csrfToken string
}

// NewClient creates a client with a default *http.Client
func NewClient(config Config) *Client {
	return NewClientWithHTTP(config, &http.Client{Timeout: config.Timeout})
}

// NewClientWithHTTP creates a client using the given transport
func NewClientWithHTTP(config Config, httpClient HTTPClient) *Client {
	config.UsersAPIURL = strings.TrimRight(config.UsersAPIURL, "/")
	config.GroupsAPIURL = strings.TrimRight(config.GroupsAPIURL, "/")
	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

type userResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

type groupMembership struct {
	Group struct {
		ID int64 `json:"id"`
	} `json:"group"`
	Role role `json:"role"`
}

type membershipsResponse struct {
	Data []groupMembership `json:"data"`
}

type rolesResponse struct {
	GroupID int64  `json:"groupId"`
	Roles   []role `json:"roles"`
}

// GetUsernameFromID resolves a user id to its username
func (c *Client) GetUsernameFromID(ctx context.Context, userID int64) (string, error) {
	var user userResponse
	url := fmt.Sprintf("%s/v1/users/%d", c.config.UsersAPIURL, userID)
	if err := c.getJSON(ctx, url, &user); err != nil {
		return "", fmt.Errorf("failed to get username for %d: %w", userID, err)
	}
	if user.Name == "" {
		return "", fmt.Errorf("user %d has no username", userID)
	}
	return user.Name, nil
}

// GetRankInGroup returns the user's rank in the group, 0 when not a member
func (c *Client) GetRankInGroup(ctx context.Context, groupID, userID int64) (int, error) {
	membership, err := c.membership(ctx, groupID, userID)
	if err != nil {
		return 0, err
	}
	if membership == nil {
		return 0, nil
	}
	return membership.Role.Rank, nil
}

// GetRankNameInGroup returns the name of the user's role, "Guest" when not a member
func (c *Client) GetRankNameInGroup(ctx context.Context, groupID, userID int64) (string, error) {
	membership, err := c.membership(ctx, groupID, userID)
	if err != nil {
		return "", err
	}
	if membership == nil {
		return guestRankName, nil
	}
	return membership.Role.Name, nil
}

// SetRank moves the user to the role holding rank. It returns false when
// Roblox declines the change (a 4xx answer), and an error for anything else.
func (c *Client) SetRank(ctx context.Context, groupID, userID int64, rank int) (bool, error) {
	roleID, err := c.roleIDForRank(ctx, groupID, rank)
	if err != nil {
		return false, err
	}

	body, err := json.Marshal(map[string]int64{"roleId": roleID})
	if err != nil {
		return false, fmt.Errorf("failed to encode role change: %w", err)
	}

	url := fmt.Sprintf("%s/v1/groups/%d/users/%d", c.config.GroupsAPIURL, groupID, userID)
	err = c.doAuthenticated(ctx, http.MethodPatch, url, body)
	if err == nil {
		return true, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		log.Printf("Roblox declined rank change for user %d in group %d: %v", userID, groupID, apiErr)
		return false, nil
	}
	return false, fmt.Errorf("failed to set rank for %d: %w", userID, err)
}

func (c *Client) membership(ctx context.Context, groupID, userID int64) (*groupMembership, error) {
	var memberships membershipsResponse
	url := fmt.Sprintf("%s/v2/users/%d/groups/roles", c.config.GroupsAPIURL, userID)
	if err := c.getJSON(ctx, url, &memberships); err != nil {
		return nil, fmt.Errorf("failed to get groups for %d: %w", userID, err)
	}

	for i := range memberships.Data {
		if memberships.Data[i].Group.ID == groupID {
			return &memberships.Data[i], nil
		}
	}
	return nil, nil
}

func (c *Client) roleIDForRank(ctx context.Context, groupID int64, rank int) (int64, error) {
	var roles rolesResponse
	url := fmt.Sprintf("%s/v1/groups/%d/roles", c.config.GroupsAPIURL, groupID)
	if err := c.getJSON(ctx, url, &roles); err != nil {
		return 0, fmt.Errorf("failed to get roles for group %d: %w", groupID, err)
	}

	for _, r := range roles.Roles {
		if r.Rank == rank {
			return r.ID, nil
		}
	}
	return 0, fmt.Errorf("group %d has no role with rank %d", groupID, rank)
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(req, resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// doAuthenticated sends a cookie-authenticated write. Roblox answers the
// first write of a session with 403 and a fresh CSRF token; the request is
// retried once with that token.
func (c *Client) doAuthenticated(ctx context.Context, method, url string, body []byte) error {
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.AddCookie(&http.Cookie{Name: cookieName, Value: c.config.Cookie})

		c.mu.Lock()
		token := c.csrfToken
		c.mu.Unlock()
		if token != "" {
			req.Header.Set(csrfHeader, token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}

		if resp.StatusCode == http.StatusForbidden && resp.Header.Get(csrfHeader) != "" && attempt == 0 {
			c.mu.Lock()
			c.csrfToken = resp.Header.Get(csrfHeader)
			c.mu.Unlock()
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := newAPIError(req, resp)
			resp.Body.Close()
			return apiErr
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil
	}

	return fmt.Errorf("roblox %s %s: csrf token rejected", method, url)
}

func newAPIError(req *http.Request, resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	return &APIError{
		StatusCode: resp.StatusCode,
		Method:     req.Method,
		URL:        req.URL.String(),
		Body:       strings.TrimSpace(string(body)),
	}
}
