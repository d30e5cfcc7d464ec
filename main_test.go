package main

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/rank-activity/config"
	"github.com/blogem/rank-activity/controllers"
	"github.com/blogem/rank-activity/database"
	"github.com/blogem/rank-activity/models"
	"github.com/blogem/rank-activity/repositories"
	"github.com/blogem/rank-activity/services"
	"github.com/blogem/rank-activity/services/mocks"
)

const groupID int64 = config.DefaultGroupID

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockGroupService) {
	conn, dialect, err := database.Open(filepath.Join(t.TempDir(), "activity.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, database.RunMigrations(conn, dialect))

	cfg := &config.Config{
		Port:        "0",
		DatabaseURL: "activity.db",
		Roblox: config.RobloxConfig{
			Cookie:     "test-cookie",
			GroupID:    config.DefaultGroupID,
			TargetRank: config.DefaultTargetRank,
		},
		Stream: config.StreamConfig{
			PollInterval:      20 * time.Millisecond,
			KeepaliveInterval: time.Hour,
			Window:            config.DefaultStreamWindow,
		},
	}

	group := mocks.NewMockGroupService(t)
	srvs := services.NewServices(repositories.NewRepositories(conn, dialect), group, cfg)
	server := httptest.NewServer(setupRouter(controllers.NewControllers(srvs), conn))
	t.Cleanup(server.Close)

	return server, group
}

func getJSON(t *testing.T, url string, out interface{}) int {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestRankChangeReachesSnapshotAndStream(t *testing.T) {
	server, group := newTestServer(t)

	var empty models.Snapshot
	assert.Equal(t, http.StatusOK, getJSON(t, server.URL+"/activity-log", &empty))
	assert.NotNil(t, empty.Changes)
	assert.Empty(t, empty.Changes)

	group.EXPECT().GetUsernameFromID(mock.Anything, int64(42)).Return("Ann", nil)
	group.EXPECT().GetRankInGroup(mock.Anything, groupID, int64(42)).Return(1, nil)
	group.EXPECT().SetRank(mock.Anything, groupID, int64(42), config.DefaultTargetRank).Return(true, nil)
	group.EXPECT().GetRankNameInGroup(mock.Anything, groupID, int64(42)).Return("Trusted", nil)

	var result models.MessageResponse
	assert.Equal(t, http.StatusOK, getJSON(t, server.URL+"/rank?id=42", &result))
	assert.Equal(t, "User rank updated.", result.Message)

	var snapshot models.Snapshot
	assert.Equal(t, http.StatusOK, getJSON(t, server.URL+"/activity-log", &snapshot))
	require.Len(t, snapshot.Changes, 1)
	assert.Equal(t, "Ann", snapshot.Changes[0].User)
	assert.Equal(t, models.ChangeModified, snapshot.Changes[0].Type)
	assert.Equal(t, "Ann's rank was updated to Trusted.", snapshot.Changes[0].Description)
	assert.Equal(t, snapshot.Changes[0].Timestamp, snapshot.LastModified)

	resp, err := http.Get(server.URL + "/activity-log/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Empty(t, resp.Header.Get("Content-Encoding"))

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(line, "data: "))

	var frame models.Snapshot
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &frame))
	assert.Equal(t, snapshot, frame)
}

func TestRankRequiresUserID(t *testing.T) {
	server, _ := newTestServer(t)

	var result models.MessageResponse
	assert.Equal(t, http.StatusOK, getJSON(t, server.URL+"/rank", &result))
	assert.Equal(t, "UserId not given.", result.Message)
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t)

	var health map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, server.URL+"/health", &health))
	assert.Equal(t, "healthy", health["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
