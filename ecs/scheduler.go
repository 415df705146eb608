package ecs

import (
	"context"
	"math"
	"time"

	"github.com/plus3/scenecore/config"
	"go.uber.org/zap"
)

// Phase identifies one of the lifecycle hooks the scheduler drives.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseUpdate
	PhasePhysicsUpdate
	PhaseRender
	PhaseDestroy
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhaseUpdate:
		return "Update"
	case PhasePhysicsUpdate:
		return "PhysicsUpdate"
	case PhaseRender:
		return "Render"
	case PhaseDestroy:
		return "OnDestroy"
	default:
		return "Unknown"
	}
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Frames       int64
	PhysicsSteps int64
	// DroppedPhysicsTime is simulation time discarded because a frame needed
	// more than MaxPhysicsSteps steps to catch up.
	DroppedPhysicsTime time.Duration
	Phases             []PhaseStats
}

// PhaseStats provides execution statistics for a single lifecycle phase.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *phaseStatsInternal) record(duration time.Duration) {
	s.executionCount++
	s.lastDuration = duration
	s.totalDuration += duration

	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}
}

// Scheduler drives the lifecycle of a single entity: Start once, Update every
// frame, PhysicsUpdate at a fixed step, and Render every frame.
type Scheduler struct {
	target *Entity
	cfg    config.SchedulerConfig
	log    *zap.Logger

	destroyed   bool
	accumulator time.Duration

	frames       int64
	physicsSteps int64
	dropped      time.Duration
	phaseStats   [phaseCount]phaseStatsInternal
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithSchedulerLogger sets the logger for run loop events.
func WithSchedulerLogger(log *zap.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.log = log
	}
}

// NewScheduler creates a scheduler for target.
func NewScheduler(target *Entity, cfg config.SchedulerConfig, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		target: target,
		cfg:    cfg,
		log:    target.Logger(),
	}
	for i := range s.phaseStats {
		s.phaseStats[i].minDuration = time.Duration(1<<63 - 1)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Target returns the driven entity.
func (s *Scheduler) Target() *Entity {
	return s.target
}

func (s *Scheduler) timed(phase Phase, fn func()) {
	start := time.Now()
	fn()
	s.phaseStats[phase].record(time.Since(start))
}

// Tick runs the non-render part of a frame: Start unless the entity has
// already started, then Update with dt, then as many fixed PhysicsUpdate steps
// as the accumulated time allows, up to MaxPhysicsSteps. Negative dt reaches
// Update unchanged but never moves the physics clock.
func (s *Scheduler) Tick(dt float64) {
	if !s.target.Started() {
		s.timed(PhaseStart, s.target.Start)
	}

	s.timed(PhaseUpdate, func() { s.target.Update(float32(dt)) })

	step := s.cfg.PhysicsStep
	if step <= 0 {
		return
	}

	if dt > 0 {
		s.accumulator += time.Duration(math.Round(dt * float64(time.Second)))
	}
	stepSeconds := float32(step.Seconds())
	for n := 0; s.accumulator >= step; n++ {
		if n >= s.cfg.MaxPhysicsSteps {
			remainder := s.accumulator % step
			s.dropped += s.accumulator - remainder
			s.accumulator = remainder
			break
		}
		s.timed(PhasePhysicsUpdate, func() { s.target.PhysicsUpdate(stepSeconds) })
		s.accumulator -= step
		s.physicsSteps++
	}
}

// RenderFrame runs Render once.
func (s *Scheduler) RenderFrame() {
	s.timed(PhaseRender, s.target.Render)
	s.frames++
}

// Once runs a whole frame with the given delta time in seconds.
func (s *Scheduler) Once(dt float64) {
	s.Tick(dt)
	s.RenderFrame()
}

// Destroy runs OnDestroy on the target. Only the first call has an effect.
func (s *Scheduler) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.timed(PhaseDestroy, s.target.OnDestroy)
}

// Run executes frames at the given interval until the context is cancelled.
// A non-positive interval uses the configured FrameInterval.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = s.cfg.FrameInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Debug("scheduler running",
		zap.String("entity", s.target.Name),
		zap.Duration("interval", interval),
		zap.Duration("physics_step", s.cfg.PhysicsStep),
	)

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("scheduler stopped", zap.String("entity", s.target.Name), zap.Int64("frames", s.frames))
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about phase execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Frames:             s.frames,
		PhysicsSteps:       s.physicsSteps,
		DroppedPhysicsTime: s.dropped,
		Phases:             make([]PhaseStats, phaseCount),
	}

	for i := range s.phaseStats {
		internal := &s.phaseStats[i]
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Phases[i] = PhaseStats{
			Name:           Phase(i).String(),
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
