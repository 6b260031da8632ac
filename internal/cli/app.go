package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tamalife/internal/config"
	"tamalife/internal/game"
	"tamalife/internal/logger"
	"tamalife/internal/notify"
	"tamalife/internal/pet"
	"tamalife/internal/store"
)

// app holds everything a command needs once the save is loaded.
type app struct {
	cfg     config.Config
	log     *logger.Logger
	codec   *store.Codec
	session *game.Session
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile = opts.profile
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = opts.dataDir
	}
	if flags.Changed("storage") {
		cfg.Storage = opts.storage
	}
	if flags.Changed("notifier") {
		cfg.Notifier = opts.notifier
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("log-mode") {
		cfg.Log.Mode = opts.logMode
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openBackend(ctx context.Context, cfg config.Config) (store.Backend, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		return store.OpenSQLite(ctx, cfg.DBPath(), cfg.Profile)
	default:
		return store.NewFileBackend(cfg.SavePath())
	}
}

func newSink(cfg config.Config, log *logger.Logger) notify.Sink {
	switch cfg.Notifier {
	case config.NotifierTermux:
		return notify.NewTermux(log)
	case config.NotifierLog:
		return notify.Log{Log: log}
	default:
		return notify.Nop{}
	}
}

// openApp loads the config and the pet. The returned cleanup closes the
// store and flushes the log; it does not save.
func openApp(ctx context.Context, cmd *cobra.Command) (*app, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	base, err := logger.New(cfg.Log.Mode, cfg.Log.File)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	log := base.With("profile", cfg.Profile)

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		base.Sync()
		return nil, nil, err
	}

	rng := pet.NewRand(cfg.Seed)
	tmpl := pet.DefaultTemplate().WithName(cfg.PetName)
	codec := store.NewCodec(backend, tmpl, rng, log)
	p, err := codec.Load(ctx)
	if err != nil {
		_ = codec.Close()
		base.Sync()
		return nil, nil, err
	}

	engine := pet.NewEngine(rng, tmpl)
	session := game.NewSession(p, engine, codec, log, game.WithSink(newSink(cfg, log)))
	cleanup := func() {
		if err := codec.Close(); err != nil {
			log.Warn("failed to close store", "error", err)
		}
		base.Sync()
	}
	return &app{cfg: cfg, log: log, codec: codec, session: session}, cleanup, nil
}
