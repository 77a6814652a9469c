package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// queueSize bounds requests waiting for the consumer. Producers block when
// it is full; the debouncers and the pull timer produce at most a handful.
const queueSize = 64

// Operations are the actions the consumer runs
type Operations interface {
	Apply(ctx context.Context) error
	Update(ctx context.Context) error
	Pull(ctx context.Context) error
}

// Options configure a Service
type Options struct {
	StageDir      string
	ApplyDelay    time.Duration
	UpdateDelay   time.Duration
	PullFrequency time.Duration
}

// Service watches the stage and runs operations from a single consumer
type Service struct {
	opts   Options
	ops    Operations
	queue  chan Request
	logger zerolog.Logger
}

// New creates a service. Nothing runs until Run.
func New(opts Options, ops Operations) *Service {
	return &Service{
		opts:   opts,
		ops:    ops,
		queue:  make(chan Request, queueSize),
		logger: logging.GetLogger("service"),
	}
}

// Enqueue adds a request behind those already waiting
func (s *Service) Enqueue(ctx context.Context, req Request) error {
	select {
	case s.queue <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run sets up the watch, starts the producers and consumes requests until
// ctx is cancelled. Only a failure to set up the watch is returned.
func (s *Service) Run(ctx context.Context) error {
	if s.opts.ApplyDelay <= 0 || s.opts.UpdateDelay <= 0 || s.opts.PullFrequency <= 0 {
		return errors.New(errors.ErrInvalidInput, "service delays and pull frequency must be positive")
	}

	stageDir, err := filepath.EvalSymlinks(s.opts.StageDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWatchSetup, "failed to resolve stage dir %s", s.opts.StageDir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatchSetup, "failed to create file watcher")
	}
	defer func() { _ = watcher.Close() }()

	if err := addRecursive(watcher, stageDir); err != nil {
		return errors.Wrapf(err, errors.ErrWatchSetup, "failed to watch %s", stageDir)
	}

	applyDebouncer := NewDebouncer(s.opts.ApplyDelay, func() { s.produce(ctx, ApplyRequest) })
	updateDebouncer := NewDebouncer(s.opts.UpdateDelay, func() { s.produce(ctx, UpdateRequest) })

	go s.observe(ctx, watcher, stageDir, applyDebouncer, updateDebouncer)
	go s.pullLoop(ctx)

	s.logger.Info().
		Str("stage", stageDir).
		Dur("apply_delay", s.opts.ApplyDelay).
		Dur("update_delay", s.opts.UpdateDelay).
		Dur("pull_frequency", s.opts.PullFrequency).
		Msg("Watching stage")

	s.consume(ctx)
	return nil
}

func (s *Service) produce(ctx context.Context, req Request) {
	if err := s.Enqueue(ctx, req); err != nil {
		s.logger.Debug().Str("request", req.String()).Msg("Dropped request on shutdown")
	}
}

func (s *Service) observe(ctx context.Context, w *fsnotify.Watcher, stageDir string, debouncers ...*Debouncer) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !qualifies(stageDir, ev) {
				s.logger.Trace().Str("event", ev.String()).Msg("Ignoring event")
				continue
			}
			s.logger.Debug().Str("event", ev.String()).Msg("FS event received")

			if isNewDir(ev) {
				if err := addRecursive(w, ev.Name); err != nil {
					s.logger.Warn().Err(err).Str("dir", ev.Name).Msg("Failed to watch new directory")
				}
			}
			for _, d := range debouncers {
				d.Put()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.logger.Error().Err(err).Msg("File watch error")
		}
	}
}

// pullLoop enqueues a pull immediately and then every pull frequency
func (s *Service) pullLoop(ctx context.Context) {
	ticker := time.NewTicker(s.opts.PullFrequency)
	defer ticker.Stop()

	for {
		s.produce(ctx, PullRequest)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// consume runs requests one at a time until ctx is done or the queue closes
func (s *Service) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Service stopped")
			return
		case req, ok := <-s.queue:
			if !ok {
				return
			}
			s.handle(ctx, req)
		}
	}
}

func (s *Service) handle(ctx context.Context, req Request) {
	s.logger.Info().Str("request", req.String()).Msg("Received request")

	switch req {
	case ApplyRequest:
		if err := s.ops.Apply(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Failed applying dotfiles")
		}
	case UpdateRequest:
		if err := s.ops.Update(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Failed updating dotfiles stage")
		}
	case PullRequest:
		if err := s.ops.Pull(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Failed pulling dotfiles stage")
			return
		}
		if err := s.ops.Apply(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Failed applying dotfiles after pull")
		}
	}
}
