package services

import (
	"time"

	"github.com/blogem/rank-activity/config"
	"github.com/blogem/rank-activity/repositories"
)

// Services holds all service instances
type Services struct {
	Rank     RankService
	Activity ActivityService
	Stream   StreamService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, group GroupService, cfg *config.Config) *Services {
	return &Services{
		Rank: NewRankService(repos.ActivityLog, group, RankPolicy{
			GroupID:       cfg.Roblox.GroupID,
			TargetRank:    cfg.Roblox.TargetRank,
			HasCredential: cfg.HasCredential(),
		}),
		Activity: NewActivityService(repos.ActivityLog),
		Stream: NewStreamService(repos.ActivityLog, StreamOptions{
			PollInterval:      cfg.Stream.PollInterval,
			KeepaliveInterval: cfg.Stream.KeepaliveInterval,
			Window:            cfg.Stream.Window,
		}),
	}
}

// clock is swapped in tests
type clock func() time.Time
