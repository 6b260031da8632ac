package game

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"tamalife/internal/pet"
)

// Renderer shows the pet and short messages to the player.
type Renderer interface {
	Render(s pet.Snapshot)
	Message(text string)
}

// CommandReader blocks until the player enters a line. It returns io.EOF when
// input ends.
type CommandReader interface {
	ReadCommand(ctx context.Context) (string, error)
}

// Run is the headless foreground loop: tick, render, read, act. It returns
// nil when the player quits, input ends or ctx is cancelled.
func Run(ctx context.Context, s *Session, r Renderer, in CommandReader) error {
	for {
		s.Tick()
		r.Render(s.Snapshot())

		line, err := in.ReadCommand(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			r.Message("❓ " + err.Error())
			continue
		}

		switch cmd.Action {
		case ActionQuit:
			return nil
		case ActionStatus:
			continue
		case ActionHelp:
			r.Message(HelpText())
			continue
		}

		out, err := s.Act(ctx, cmd)
		var rejected *pet.ActionError
		switch {
		case errors.As(err, &rejected):
			r.Message(rejected.Reason.Message())
		case err != nil:
			return err
		default:
			r.Message(out.Message)
		}
	}
}

// RunWithAutosave runs foreground alongside the autosave loop. When
// foreground returns, autosave stops and the final save is written.
func RunWithAutosave(ctx context.Context, s *Session, interval time.Duration, foreground func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	fgCtx, stop := context.WithCancel(gctx)
	defer stop()

	g.Go(func() error {
		return s.RunAutosave(fgCtx, interval)
	})
	g.Go(func() error {
		defer stop()
		return foreground(fgCtx)
	})
	runErr := g.Wait()

	// The run context may already be cancelled, the final save must still land
	if err := s.Close(context.WithoutCancel(ctx)); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}
