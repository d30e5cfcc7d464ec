package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/blogem/rank-activity/config"
	"github.com/blogem/rank-activity/metrics"
	"github.com/blogem/rank-activity/models"
	"github.com/blogem/rank-activity/repositories"
)

// Emitter writes frames to one open stream connection
type Emitter interface {
	Send(snapshot *models.Snapshot) error
	Heartbeat() error
}

// StreamService pushes activity log snapshots to a single connection
type StreamService interface {
	Run(ctx context.Context, emitter Emitter) error
}

// StreamOptions sets the stream cadences and the polled window size
type StreamOptions struct {
	PollInterval      time.Duration
	KeepaliveInterval time.Duration
	Window            int
}

func (o StreamOptions) withDefaults() StreamOptions {
	if o.PollInterval <= 0 {
		o.PollInterval = config.DefaultPollInterval
	}
	if o.KeepaliveInterval <= 0 {
		o.KeepaliveInterval = config.DefaultKeepaliveInterval
	}
	if o.Window <= 0 {
		o.Window = config.DefaultStreamWindow
	}
	return o
}

// streamService implements StreamService interface
type streamService struct {
	logRepo repositories.ActivityLogRepository
	opts    StreamOptions
	now     clock
}

// NewStreamService creates a new stream service
func NewStreamService(logRepo repositories.ActivityLogRepository, opts StreamOptions) StreamService {
	return &streamService{
		logRepo: logRepo,
		opts:    opts.withDefaults(),
		now:     time.Now,
	}
}

// streamCursor remembers the latest timestamp the connection has been sent.
// latest is empty when the last frame carried no entries.
type streamCursor struct {
	emitted bool
	latest  string
}

// changed reports whether a window whose newest entry is latest must be sent.
// The first poll always sends; after that only a different latest timestamp
// does, which includes the window becoming empty.
func (c *streamCursor) changed(latest string) bool {
	if !c.emitted {
		return true
	}
	return latest != c.latest
}

func (c *streamCursor) advance(latest string) {
	c.emitted = true
	c.latest = latest
}

// Run polls the log and writes frames until ctx is done or the emitter fails.
// It polls once immediately, then every PollInterval, and sends a heartbeat
// every KeepaliveInterval. Poll failures are logged and retried on the next
// tick without touching the cursor. A cancelled ctx returns nil.
func (s *streamService) Run(ctx context.Context, emitter Emitter) error {
	metrics.StreamConnections.Inc()
	defer metrics.StreamConnections.Dec()

	var cursor streamCursor

	if err := s.poll(ctx, emitter, &cursor); err != nil {
		return closeErr(ctx, err)
	}

	pollTicker := time.NewTicker(s.opts.PollInterval)
	defer pollTicker.Stop()

	keepaliveTicker := time.NewTicker(s.opts.KeepaliveInterval)
	defer keepaliveTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-pollTicker.C:
			if ctx.Err() != nil {
				return nil
			}
			if err := s.poll(ctx, emitter, &cursor); err != nil {
				return closeErr(ctx, err)
			}

		case <-keepaliveTicker.C:
			if ctx.Err() != nil {
				return nil
			}
			if err := emitter.Heartbeat(); err != nil {
				return closeErr(ctx, fmt.Errorf("failed to write heartbeat: %w", err))
			}
			metrics.StreamFrames.WithLabelValues("keepalive").Inc()
		}
	}
}

// poll returns an error only when the emitter failed
func (s *streamService) poll(ctx context.Context, emitter Emitter, cursor *streamCursor) error {
	entries, err := s.logRepo.List(ctx, s.opts.Window)
	if err != nil {
		if ctx.Err() == nil {
			metrics.StreamPollFailures.Inc()
			log.Printf("Error fetching activity logs for stream: %v", err)
		}
		return nil
	}

	latest := ""
	if len(entries) > 0 {
		latest = models.FormatTimestamp(entries[0].Timestamp)
	}

	if !cursor.changed(latest) {
		return nil
	}

	if ctx.Err() != nil {
		return nil
	}

	if err := emitter.Send(models.NewSnapshot(entries, s.now())); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	metrics.StreamFrames.WithLabelValues("data").Inc()

	cursor.advance(latest)
	return nil
}

// closeErr hides write failures caused by the connection going away
func closeErr(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
