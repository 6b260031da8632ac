package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tamalife/internal/logger"
	"tamalife/internal/notify"
	"tamalife/internal/pet"
)

// Store persists the pet between runs.
type Store interface {
	Save(ctx context.Context, p *pet.Pet) error
	Archive(ctx context.Context, p *pet.Pet, at time.Time) error
}

// Session owns the live pet. Every read and write goes through its mutex, so
// the UI, the autosave loop and the final save never race.
type Session struct {
	mu     sync.Mutex
	saveMu sync.Mutex
	pet    pet.Pet

	engine *pet.Engine
	store  Store
	sink   notify.Sink
	log    *logger.Logger
	now    func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source used for ticks and retirement.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithSink sets where notices are delivered. The default drops them.
func WithSink(sink notify.Sink) Option {
	return func(s *Session) { s.sink = sink }
}

// NewSession wraps a loaded pet.
func NewSession(p pet.Pet, engine *pet.Engine, store Store, log *logger.Logger, opts ...Option) *Session {
	s := &Session{
		pet:    p,
		engine: engine,
		store:  store,
		sink:   notify.Nop{},
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the pet that is safe to read without the lock.
func (s *Session) Snapshot() pet.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pet.NewSnapshot(&s.pet, s.now())
}

// Tick brings the pet up to date with the clock.
func (s *Session) Tick() {
	s.mu.Lock()
	s.tickLocked()
	notices := s.pet.TakeNotices()
	s.mu.Unlock()

	s.deliver(notices)
}

func (s *Session) tickLocked() {
	now := s.now()
	s.engine.RefreshEvent(&s.pet, now)
	s.engine.Tick(&s.pet, now)
}

// Act ticks the pet and then performs the command. Rejected commands return a
// *pet.ActionError and leave the pet as the tick left it.
func (s *Session) Act(ctx context.Context, cmd Command) (pet.Outcome, error) {
	if cmd.Action == pet.ActionRetire {
		return s.Retire(ctx)
	}

	s.mu.Lock()
	s.tickLocked()
	out, err := s.engine.Perform(&s.pet, cmd.Action, cmd.Arg)
	notices := s.pet.TakeNotices()
	s.mu.Unlock()

	s.deliver(notices)
	if err != nil {
		s.log.Debug("action rejected", "action", cmd.Action, "arg", cmd.Arg, "error", err)
		return pet.Outcome{}, err
	}
	s.log.Info("action performed", "action", cmd.Action, "arg", cmd.Arg, "xp", out.XP, "coins", out.Coins)
	return out, nil
}

// Save writes the current pet. Saves are serialized so an older copy never
// overwrites a newer one.
func (s *Session) Save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	p := s.pet.Clone()
	s.mu.Unlock()

	if err := s.store.Save(ctx, &p); err != nil {
		return fmt.Errorf("save pet: %w", err)
	}
	return nil
}

// Retire archives the current pet, replaces it with its successor and saves.
func (s *Session) Retire(ctx context.Context) (pet.Outcome, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	s.tickLocked()
	now := s.now()
	next, err := s.engine.Retire(&s.pet, now)
	if err != nil {
		notices := s.pet.TakeNotices()
		s.mu.Unlock()
		s.deliver(notices)
		return pet.Outcome{}, err
	}
	old := s.pet.Clone()
	pending := s.pet.TakeNotices()
	s.pet = next
	saved := s.pet.Clone()
	pending = append(pending, s.pet.TakeNotices()...)
	s.mu.Unlock()

	s.deliver(pending)
	gain := saved.Stardust - old.Stardust
	s.log.Info("pet retired", "id", old.ID, "name", old.Name, "level", old.Level, "stardust", gain)

	// The successor is already live, so a failed archive is only logged
	if err := s.store.Archive(ctx, &old, now); err != nil {
		s.log.Error("failed to archive retired pet", "id", old.ID, "error", err)
	}
	if err := s.store.Save(ctx, &saved); err != nil {
		return pet.Outcome{}, fmt.Errorf("save successor: %w", err)
	}
	return pet.Outcome{
		Action:  pet.ActionRetire,
		Message: fmt.Sprintf("🌟 %s retired and left %d stardust. A new egg appears!", old.Name, gain),
	}, nil
}

// RunAutosave ticks and saves every interval until ctx is done.
func (s *Session) RunAutosave(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Tick()
			if err := s.Save(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				s.log.Error("autosave failed", "error", err)
				continue
			}
			s.log.Debug("autosaved")
		}
	}
}

// Close performs the final tick and save.
func (s *Session) Close(ctx context.Context) error {
	s.Tick()
	if err := s.Save(ctx); err != nil {
		return err
	}
	s.log.Info("final save complete")
	return nil
}

func (s *Session) deliver(notices []pet.Notice) {
	for _, n := range notices {
		s.log.Info("notice", "kind", n.Kind, "title", n.Title)
		s.sink.Notify(n.Title, n.Body)
	}
}
