package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tamalife/internal/logger"
	"tamalife/internal/pet"
)

// ErrNotFound is returned by a Backend when no save exists yet.
var ErrNotFound = errors.New("save not found")

// Backend reads and writes the raw save document. Write must replace the
// previous document atomically: a failed write leaves the old copy intact.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, doc []byte) error
	Close() error
}

// Retired summarizes a pet archived at retirement.
type Retired struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Level     int           `json:"level"`
	Evolution pet.Evolution `json:"evolution_type"`
	RetiredAt time.Time     `json:"retired_at"`
}

// Archiver is implemented by backends that keep a record of retired pets.
type Archiver interface {
	Archive(ctx context.Context, r Retired, doc []byte) error
	History(ctx context.Context) ([]Retired, error)
}

// Codec loads and saves the pet through a Backend, reconciling older
// documents against the template.
type Codec struct {
	backend  Backend
	template pet.Template
	rng      pet.Rand
	now      func() time.Time
	log      *logger.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the time source used when creating new pets.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec creates a codec over backend. tmpl supplies the default pet.
func NewCodec(backend Backend, tmpl pet.Template, rng pet.Rand, log *logger.Logger, opts ...Option) *Codec {
	c := &Codec{
		backend:  backend,
		template: tmpl,
		rng:      rng,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the saved pet. A missing or unreadable document is replaced
// by a fresh pet, which is persisted before returning.
func (c *Codec) Load(ctx context.Context) (pet.Pet, error) {
	data, err := c.backend.Read(ctx)
	if errors.Is(err, ErrNotFound) {
		c.log.Info("no save found, creating new pet")
		return c.fresh(ctx), nil
	}
	if err != nil {
		return pet.Pet{}, fmt.Errorf("read save: %w", err)
	}

	p, err := Decode(data, c.template.New(c.now(), c.rng))
	if err != nil {
		c.log.Warn("save is corrupt, creating new pet", "error", err)
		return c.fresh(ctx), nil
	}
	c.log.Debug("loaded pet", "id", p.ID, "name", p.Name, "stage", p.AgeStage, "level", p.Level)
	return p, nil
}

func (c *Codec) fresh(ctx context.Context) pet.Pet {
	p := c.template.New(c.now(), c.rng)
	if err := c.Save(ctx, &p); err != nil {
		// The pet lives on in memory; the next save will retry
		c.log.Error("failed to persist new pet", "error", err)
	}
	return p
}

// Save writes the whole pet document.
func (c *Codec) Save(ctx context.Context, p *pet.Pet) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := c.backend.Write(ctx, data); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Archive records a retired pet when the backend supports it.
func (c *Codec) Archive(ctx context.Context, p *pet.Pet, at time.Time) error {
	a, ok := c.backend.(Archiver)
	if !ok {
		return nil
	}
	data, err := Encode(p)
	if err != nil {
		return err
	}
	r := Retired{ID: p.ID, Name: p.Name, Level: p.Level, Evolution: p.Evolution, RetiredAt: at}
	if err := a.Archive(ctx, r, data); err != nil {
		return fmt.Errorf("archive pet: %w", err)
	}
	return nil
}

// History lists retired pets, newest first. Backends without an archive
// return an empty list.
func (c *Codec) History(ctx context.Context) ([]Retired, error) {
	a, ok := c.backend.(Archiver)
	if !ok {
		return nil, nil
	}
	return a.History(ctx)
}

// Close releases the backend.
func (c *Codec) Close() error {
	return c.backend.Close()
}

// Encode serializes a pet document.
func Encode(p *pet.Pet) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal pet: %w", err)
	}
	return data, nil
}

// Decode parses a pet document and backfills anything it lacks from def.
func Decode(data []byte, def pet.Pet) (pet.Pet, error) {
	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return pet.Pet{}, fmt.Errorf("parse save: %w", err)
	}
	if present == nil {
		return pet.Pet{}, errors.New("parse save: document is null")
	}
	var loaded pet.Pet
	if err := json.Unmarshal(data, &loaded); err != nil {
		return pet.Pet{}, fmt.Errorf("parse save: %w", err)
	}
	return Reconcile(def, loaded, present), nil
}
