package flow

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// PersistMode selects how snapshots reach the repository after a transition.
type PersistMode string

const (
	PersistSync  PersistMode = "sync"
	PersistAsync PersistMode = "async"
)

// Enqueuer hands a persisted snapshot to the background worker.
type Enqueuer interface {
	EnqueueSnapshotPersist(ctx context.Context, payload []byte, revision int64) error
}

// Recorder receives transition and persistence telemetry.
type Recorder interface {
	ObserveTransition(event EventKind, activity Activity)
	ObservePersistFailure(mode PersistMode)
}

type nopRecorder struct{}

func (nopRecorder) ObserveTransition(EventKind, Activity) {}
func (nopRecorder) ObservePersistFailure(PersistMode)     {}

// ServiceOptions configures a Service.
type ServiceOptions struct {
	Repository Repository
	Enqueuer   Enqueuer
	Mode       PersistMode
	Recorder   Recorder
	Logger     *slog.Logger
	Clock      func() time.Time
}

// Service serialises events through a Machine and persists each result.
type Service struct {
	mu       sync.Mutex
	machine  *Machine
	repo     Repository
	enqueuer Enqueuer
	mode     PersistMode
	recorder Recorder
	logger   *slog.Logger
	clock    func() time.Time
	revision int64
	version  uint64
}

// NewService constructs a Service and restores the persisted snapshot.
func NewService(ctx context.Context, opts ServiceOptions) *Service {
	s := &Service{
		repo:     opts.Repository,
		enqueuer: opts.Enqueuer,
		mode:     opts.Mode,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		clock:    opts.Clock,
	}
	if s.mode == "" {
		s.mode = PersistSync
	}
	if s.recorder == nil {
		s.recorder = nopRecorder{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	s.machine = NewMachine(s.Restore(ctx), WithClock(s.clock))
	return s
}

// Restore loads the persisted snapshot. Any failure falls back to Initial.
func (s *Service) Restore(ctx context.Context) Snapshot {
	if s.repo == nil {
		return Initial()
	}
	snap, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			s.logger.Warn("restore snapshot", slog.Any("error", err))
		}
		return Initial()
	}
	return snap
}

// Snapshot returns the current snapshot.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Context()
}

// Version counts transitions applied since the service started.
func (s *Service) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Current returns the snapshot together with the version it belongs to.
func (s *Service) Current() (Snapshot, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Context(), s.version
}

// CanUndo reports whether a removed transaction can be restored.
func (s *Service) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx := s.machine.Context()
	return ctx.CanUndo()
}

// Submit records a new transaction for activity.
func (s *Service) Submit(ctx context.Context, activity Activity, amount Money) (Snapshot, error) {
	if !activity.Valid() {
		return s.Snapshot(), ErrUnknownActivity
	}
	if !ValidAmount(amount) {
		return s.Snapshot(), ErrInvalidAmount
	}
	return s.send(ctx, SubmitEvent{Activity: activity, Amount: amount}, activity)
}

// Remove deletes the transaction with the given timestamp and reverses its effects.
func (s *Service) Remove(ctx context.Context, timestamp string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.machine.Context()
	idx := current.FindTransaction(timestamp)
	if idx < 0 {
		return current, ErrTransactionNotFound
	}
	tx := current.Transactions[idx]
	return s.sendLocked(ctx, RemoveEvent{Transaction: tx}, tx.Activity)
}

// Undo restores the most recently removed transaction. An empty undo slot is
// not an error.
func (s *Service) Undo(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.machine.Context()
	if current.LastRemovedTransaction == nil {
		return current, nil
	}
	return s.sendLocked(ctx, UndoEvent{}, current.LastRemovedTransaction.Activity)
}

// Reset discards all balances and history.
func (s *Service) Reset(ctx context.Context) (Snapshot, error) {
	return s.send(ctx, ResetEvent{}, "")
}

func (s *Service) send(ctx context.Context, ev Event, activity Activity) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sendLocked(ctx, ev, activity)
}

func (s *Service) sendLocked(ctx context.Context, ev Event, activity Activity) (Snapshot, error) {
	next, err := s.machine.Send(ev)
	if err != nil {
		return next, err
	}
	s.version++
	s.recorder.ObserveTransition(ev.Kind(), activity)
	s.persist(ctx, next)
	return next, nil
}

// persist never fails the caller; in-memory state stays authoritative.
func (s *Service) persist(ctx context.Context, snap Snapshot) {
	if s.repo == nil && s.enqueuer == nil {
		return
	}
	logger := s.logger.With(slog.String("mode", string(s.mode)))
	if s.mode == PersistAsync && s.enqueuer != nil {
		payload, err := Encode(snap)
		if err != nil {
			s.recorder.ObservePersistFailure(s.mode)
			logger.Error("encode snapshot", slog.Any("error", err))
			return
		}
		if err := s.enqueuer.EnqueueSnapshotPersist(ctx, payload, s.nextRevision()); err != nil {
			s.recorder.ObservePersistFailure(s.mode)
			logger.Error("enqueue snapshot persist", slog.Any("error", err))
		}
		return
	}
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		s.recorder.ObservePersistFailure(PersistSync)
		logger.Error("save snapshot", slog.Any("error", err))
	}
}

// nextRevision is monotonic within the process and stays ahead of earlier
// processes as long as clocks move forward.
func (s *Service) nextRevision() int64 {
	rev := s.clock().UnixNano()
	if rev <= s.revision {
		rev = s.revision + 1
	}
	s.revision = rev
	return rev
}
