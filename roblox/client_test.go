package roblox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGroupID = 10533277

type fakeRoblox struct {
	server       *httptest.Server
	patches      atomic.Int32
	lastRoleID   atomic.Int64
	patchStatus  int
	requireToken string
}

func newFakeRoblox(t *testing.T) *fakeRoblox {
	f := &fakeRoblox{patchStatus: http.StatusOK, requireToken: "csrf-123"}

	r := chi.NewRouter()
	r.Get("/v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "1" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors":[{"code":3,"message":"The user id is invalid."}]}`))
			return
		}
		w.Write([]byte(`{"id":1,"name":"Ann","displayName":"Annie"}`))
	})
	r.Get("/v2/users/{id}/groups/roles", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "1" {
			w.Write([]byte(`{"data":[]}`))
			return
		}
		w.Write([]byte(`{"data":[
			{"group":{"id":99},"role":{"id":9,"name":"Owner","rank":255}},
			{"group":{"id":10533277},"role":{"id":21,"name":"Member","rank":1}}
		]}`))
	})
	r.Get("/v1/groups/{groupID}/roles", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"groupId":10533277,"roles":[
			{"id":20,"name":"Guest","rank":0},
			{"id":21,"name":"Member","rank":1},
			{"id":23,"name":"Trusted","rank":3}
		]}`))
	})
	r.Patch("/v1/groups/{groupID}/users/{userID}", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value != "secret-cookie" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get(csrfHeader) != f.requireToken {
			w.Header().Set(csrfHeader, f.requireToken)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		var body struct {
			RoleID int64 `json:"roleId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.patches.Add(1)
		f.lastRoleID.Store(body.RoleID)

		w.WriteHeader(f.patchStatus)
		w.Write([]byte(`{}`))
	})

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeRoblox) client(cookie string) *Client {
	return NewClientWithHTTP(Config{
		Cookie:       cookie,
		UsersAPIURL:  f.server.URL + "/",
		GroupsAPIURL: f.server.URL,
	}, f.server.Client())
}

func TestGetUsernameFromID(t *testing.T) {
	f := newFakeRoblox(t)
	c := f.client("secret-cookie")

	name, err := c.GetUsernameFromID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)

	_, err = c.GetUsernameFromID(context.Background(), 2)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestGetRankInGroup(t *testing.T) {
	f := newFakeRoblox(t)
	c := f.client("secret-cookie")

	rank, err := c.GetRankInGroup(context.Background(), testGroupID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	name, err := c.GetRankNameInGroup(context.Background(), testGroupID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Member", name)

	// Not a member
	rank, err = c.GetRankInGroup(context.Background(), testGroupID, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, rank)

	name, err = c.GetRankNameInGroup(context.Background(), testGroupID, 2)
	require.NoError(t, err)
	assert.Equal(t, "Guest", name)
}

func TestSetRank_RetriesWithCSRFToken(t *testing.T) {
	f := newFakeRoblox(t)
	c := f.client("secret-cookie")

	ok, err := c.SetRank(context.Background(), testGroupID, 1, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(1), f.patches.Load())
	assert.Equal(t, int64(23), f.lastRoleID.Load())

	// The token is reused for the next write
	ok, err = c.SetRank(context.Background(), testGroupID, 1, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(2), f.patches.Load())
}

func TestSetRank_DeclinedIsNotAnError(t *testing.T) {
	f := newFakeRoblox(t)
	c := f.client("wrong-cookie")

	ok, err := c.SetRank(context.Background(), testGroupID, 1, 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int32(0), f.patches.Load())
}

func TestSetRank_ServerFailureIsAnError(t *testing.T) {
	f := newFakeRoblox(t)
	f.patchStatus = http.StatusServiceUnavailable
	c := f.client("secret-cookie")

	ok, err := c.SetRank(context.Background(), testGroupID, 1, 3)
	assert.False(t, ok)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestSetRank_UnknownRank(t *testing.T) {
	f := newFakeRoblox(t)
	c := f.client("secret-cookie")

	_, err := c.SetRank(context.Background(), testGroupID, 1, 200)
	assert.ErrorContains(t, err, "has no role with rank 200")
}
