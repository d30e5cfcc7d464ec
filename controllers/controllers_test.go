package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/rank-activity/models"
	"github.com/blogem/rank-activity/repositories"
	"github.com/blogem/rank-activity/services"
	"github.com/blogem/rank-activity/services/mocks"
)

type testControllers struct {
	ctrl     *Controllers
	rank     *mocks.MockRankService
	activity *mocks.MockActivityService
	stream   *mocks.MockStreamService
}

func newTestControllers(t *testing.T) *testControllers {
	tc := &testControllers{
		rank:     mocks.NewMockRankService(t),
		activity: mocks.NewMockActivityService(t),
		stream:   mocks.NewMockStreamService(t),
	}
	tc.ctrl = NewControllers(&services.Services{
		Rank:     tc.rank,
		Activity: tc.activity,
		Stream:   tc.stream,
	})
	return tc
}

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Changes: []models.LogEntryView{
			{ID: 2, User: "Bob", Type: models.ChangeModified, Timestamp: "2024-05-01T10:01:00.000Z", Description: "Bob's rank was updated to Trusted."},
			{ID: 1, User: "Ann", Type: models.ChangeModified, Timestamp: "2024-05-01T10:00:00.000Z", Description: "Ann's rank was updated to Trusted."},
		},
		LastModified: "2024-05-01T10:01:00.000Z",
	}
}

func TestActivitySnapshot(t *testing.T) {
	tc := newTestControllers(t)
	tc.activity.EXPECT().GetSnapshot(mock.Anything).Return(sampleSnapshot(), nil)

	rec := httptest.NewRecorder()
	tc.ctrl.Activity.Snapshot(rec, httptest.NewRequest(http.MethodGet, "/activity-log", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Changes, 2)
	assert.Equal(t, "Bob", body.Changes[0].User)
	assert.Equal(t, "2024-05-01T10:01:00.000Z", body.LastModified)
}

func TestActivitySnapshot_StoreFailure(t *testing.T) {
	tc := newTestControllers(t)
	tc.activity.EXPECT().GetSnapshot(mock.Anything).
		Return(nil, &repositories.StoreError{Op: "list", Err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	tc.ctrl.Activity.Snapshot(rec, httptest.NewRequest(http.MethodGet, "/activity-log", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to retrieve activity logs","changes":[]}`, rec.Body.String())
}

func TestActivityStream(t *testing.T) {
	tc := newTestControllers(t)
	tc.stream.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, emitter services.Emitter) error {
			if err := emitter.Send(sampleSnapshot()); err != nil {
				return err
			}
			return emitter.Heartbeat()
		})

	rec := httptest.NewRecorder()
	tc.ctrl.Activity.Stream(rec, httptest.NewRequest(http.MethodGet, "/activity-log/stream", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-transform", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", rec.Header().Get("Connection"))
	assert.True(t, rec.Flushed)

	frames := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n\n"), "\n\n")
	require.Len(t, frames, 2)

	require.True(t, strings.HasPrefix(frames[0], "data: "))
	var snapshot models.Snapshot
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frames[0], "data: ")), &snapshot))
	assert.Equal(t, sampleSnapshot(), &snapshot)

	assert.Equal(t, ": keepalive", frames[1])
}

func TestRankUpdate(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		userID     int64
		result     *services.RankResult
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "updated",
			query:      "?id=7",
			userID:     7,
			result:     &services.RankResult{Status: services.StatusUpdated, Message: services.MessageUpdated},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"User rank updated."}`,
		},
		{
			name:       "rejected",
			query:      "?id=7",
			userID:     7,
			result:     &services.RankResult{Status: services.StatusRejected, Message: services.MessageRejected},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"User is not in group or is already ranked."}`,
		},
		{
			name:       "declined upstream",
			query:      "?id=7",
			userID:     7,
			result:     &services.RankResult{Status: services.StatusFailed, Message: services.MessageFailed},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Failed to update rank."}`,
		},
		{
			name:       "missing credential",
			query:      "?id=7",
			userID:     7,
			err:        services.ErrMissingCredential,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"ROBLOX_COOKIE environment variable not set."}`,
		},
		{
			name:       "missing id",
			query:      "",
			userID:     0,
			err:        services.ErrMissingUserID,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"UserId not given."}`,
		},
		{
			name:       "unparsable id",
			query:      "?id=abc",
			userID:     0,
			err:        services.ErrMissingUserID,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"UserId not given."}`,
		},
		{
			name:       "mutation error",
			query:      "?id=7",
			userID:     7,
			err:        &services.MutationError{UserID: 7, Err: errors.New("roblox unavailable")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"An internal server error occurred.","error":"rank change for user 7 failed: roblox unavailable"}`,
		},
		{
			name:       "unrecorded",
			query:      "?id=7",
			userID:     7,
			result:     &services.RankResult{Status: services.StatusUnrecorded, Message: services.MessageUnrecorded},
			err:        &repositories.StoreError{Op: "append", Err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"User rank updated, but the change could not be recorded.","error":"activity log append failed: connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestControllers(t)
			tc.rank.EXPECT().PromoteMember(mock.Anything, tt.userID).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			tc.ctrl.Rank.Update(rec, httptest.NewRequest(http.MethodGet, "/rank"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDashboardIndex(t *testing.T) {
	tc := newTestControllers(t)
	tc.activity.EXPECT().RecentSnapshot(mock.Anything, dashboardWindow).Return(sampleSnapshot(), nil)

	rec := httptest.NewRecorder()
	tc.ctrl.Dashboard.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Rank Activity</title>")
	assert.Contains(t, body, "Bob&#39;s rank was updated to Trusted.")
	assert.Contains(t, body, `new EventSource("/activity-log/stream")`)
}

func TestDashboardIndex_StoreFailure(t *testing.T) {
	tc := newTestControllers(t)
	tc.activity.EXPECT().RecentSnapshot(mock.Anything, dashboardWindow).
		Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	tc.ctrl.Dashboard.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load activity logs.")
	assert.Contains(t, rec.Body.String(), "No changes recorded yet.")
}
