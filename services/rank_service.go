package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/blogem/rank-activity/metrics"
	"github.com/blogem/rank-activity/models"
	"github.com/blogem/rank-activity/repositories"
)

// GroupService is the external group-management capability
type GroupService interface {
	GetUsernameFromID(ctx context.Context, userID int64) (string, error)
	GetRankInGroup(ctx context.Context, groupID, userID int64) (int, error)
	SetRank(ctx context.Context, groupID, userID int64, rank int) (bool, error)
	GetRankNameInGroup(ctx context.Context, groupID, userID int64) (string, error)
}

// RankService promotes group members and records each completed change
type RankService interface {
	PromoteMember(ctx context.Context, userID int64) (*RankResult, error)
}

// RankPolicy fixes which group is managed and which rank members are promoted to
type RankPolicy struct {
	GroupID       int64
	TargetRank    int
	HasCredential bool
}

// RankStatus is the outcome of a promotion request
type RankStatus string

const (
	StatusUpdated    RankStatus = "updated"
	StatusRejected   RankStatus = "rejected"
	StatusFailed     RankStatus = "failed"
	StatusUnrecorded RankStatus = "unrecorded"
)

// Messages returned to callers of the rank endpoint
const (
	MessageUpdated    = "User rank updated."
	MessageRejected   = "User is not in group or is already ranked."
	MessageFailed     = "Failed to update rank."
	MessageUnrecorded = "User rank updated, but the change could not be recorded."
)

// RankResult describes what a promotion request did
type RankResult struct {
	Status  RankStatus
	Message string
	Entry   *models.LogEntry
}

// ConfigError means a precondition for talking to the group service is missing
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

var (
	ErrMissingCredential = &ConfigError{Message: "ROBLOX_COOKIE environment variable not set."}
	ErrMissingUserID     = &ConfigError{Message: "UserId not given."}
)

// MutationError means the group service failed while changing a rank
type MutationError struct {
	UserID int64
	Err    error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("rank change for user %d failed: %v", e.UserID, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// rankEvent is the raw payload stored alongside each log entry
type rankEvent struct {
	User         string            `json:"user"`
	Type         models.ChangeType `json:"type"`
	Timestamp    string            `json:"timestamp"`
	Description  string            `json:"description"`
	UserID       int64             `json:"userId"`
	GroupID      int64             `json:"groupId"`
	PreviousRank int               `json:"previousRank"`
	NewRank      int               `json:"newRank"`
	NewRankName  string            `json:"newRankName"`
}

// rankService implements RankService interface
type rankService struct {
	logRepo repositories.ActivityLogRepository
	group   GroupService
	policy  RankPolicy
	now     clock
}

// NewRankService creates a new rank service
func NewRankService(logRepo repositories.ActivityLogRepository, group GroupService, policy RankPolicy) RankService {
	return &rankService{
		logRepo: logRepo,
		group:   group,
		policy:  policy,
		now:     time.Now,
	}
}

// PromoteMember moves an eligible member to the target rank and appends one
// log entry on success. Members outside the group or already at or above the
// target rank are rejected without any mutation.
func (s *rankService) PromoteMember(ctx context.Context, userID int64) (*RankResult, error) {
	if !s.policy.HasCredential {
		return nil, ErrMissingCredential
	}
	if userID <= 0 {
		return nil, ErrMissingUserID
	}

	// A started promotion is not cancelled with its request, so a rank that
	// changed upstream always reaches the log.
	ctx = context.WithoutCancel(ctx)

	username, err := s.group.GetUsernameFromID(ctx, userID)
	if err != nil {
		metrics.RankChanges.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}

	currentRank, err := s.group.GetRankInGroup(ctx, s.policy.GroupID, userID)
	if err != nil {
		metrics.RankChanges.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to get rank of user %d: %w", userID, err)
	}

	if currentRank == 0 || currentRank >= s.policy.TargetRank {
		metrics.RankChanges.WithLabelValues(metrics.OutcomeRejected).Inc()
		return &RankResult{Status: StatusRejected, Message: MessageRejected}, nil
	}

	ok, err := s.group.SetRank(ctx, s.policy.GroupID, userID, s.policy.TargetRank)
	if err != nil {
		metrics.RankChanges.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, &MutationError{UserID: userID, Err: err}
	}
	if !ok {
		metrics.RankChanges.WithLabelValues(metrics.OutcomeFailed).Inc()
		return &RankResult{Status: StatusFailed, Message: MessageFailed}, nil
	}

	rankName, err := s.group.GetRankNameInGroup(ctx, s.policy.GroupID, userID)
	if err != nil {
		// The rank already changed upstream, so the entry is still written
		log.Printf("Failed to resolve new rank name for user %d: %v", userID, err)
		rankName = fmt.Sprintf("rank %d", s.policy.TargetRank)
	}

	entry, err := s.newEntry(username, userID, currentRank, rankName)
	if err != nil {
		return nil, err
	}

	if err := s.logRepo.Append(ctx, entry); err != nil {
		log.Printf("Rank of %s (%d) changed but the activity log append failed: %v", username, userID, err)
		metrics.LogAppends.WithLabelValues("error").Inc()
		metrics.RankChanges.WithLabelValues(metrics.OutcomeUnrecorded).Inc()
		return &RankResult{Status: StatusUnrecorded, Message: MessageUnrecorded}, err
	}

	metrics.LogAppends.WithLabelValues("ok").Inc()
	metrics.RankChanges.WithLabelValues(metrics.OutcomeUpdated).Inc()
	log.Printf("Logged rank change for %s (%d): %s", username, userID, entry.Description)

	return &RankResult{Status: StatusUpdated, Message: MessageUpdated, Entry: entry}, nil
}

func (s *rankService) newEntry(username string, userID int64, previousRank int, rankName string) (*models.LogEntry, error) {
	description := fmt.Sprintf("%s's rank was updated to %s.", username, rankName)

	raw, err := json.Marshal(rankEvent{
		User:         username,
		Type:         models.ChangeModified,
		Timestamp:    models.FormatTimestamp(s.now()),
		Description:  description,
		UserID:       userID,
		GroupID:      s.policy.GroupID,
		PreviousRank: previousRank,
		NewRank:      s.policy.TargetRank,
		NewRankName:  rankName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode rank event: %w", err)
	}

	return &models.LogEntry{
		User:        username,
		Type:        models.ChangeModified,
		Description: description,
		Raw:         raw,
	}, nil
}

// IsConfigError reports whether err is a missing-precondition error
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
