// Command headless plays matches without a window, driven by a tengo bot.
// With -tui it draws the match in the terminal in real time.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/milk9111/twinstick/arena"
	"github.com/milk9111/twinstick/bot"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/prefabs"
)

// reloadEvery is how many ticks run between watcher polls in batch mode.
const reloadEvery = 60

type runner struct {
	match   *arena.Match
	bot     *bot.Bot
	watcher *prefabs.Watcher
	sound   *sound
	logger  *slog.Logger
	ticks   int
	played  int
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run plays one match. Errors come back to main instead of exiting here so
// the log file and other deferred closers are released first.
func run(args []string) error {
	fs := flag.NewFlagSet("headless", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "enable debug logging")
	seed := fs.Int64("seed", 0, "match seed (0 uses arena.yaml, then the clock)")
	ticks := fs.Int("ticks", 0, "stop after this many ticks (0 runs until the player dies)")
	script := fs.String("script", bot.DefaultScript, "bot script in prefabs/scripts (basename, .tengo optional)")
	watch := fs.Bool("watch", false, "hot reload prefabs/*.yaml and scripts on change")
	tui := fs.Bool("tui", false, "draw the match in the terminal at real-time speed")
	withSound := fs.Bool("sound", false, "play tones on kills, round advances and death")
	logPath := fs.String("log", "", "write logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	var out io.Writer = os.Stderr
	switch {
	case *logPath != "":
		f, err := os.Create(*logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	case *tui:
		// stderr shares the terminal with the screen.
		out = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	b, err := bot.New(*script, logger)
	if err != nil {
		return err
	}

	m, err := arena.NewMatch(arena.Config{Seed: *seed, Selector: b, Logger: logger})
	if err != nil {
		return err
	}

	r := &runner{match: m, bot: b, logger: logger, ticks: *ticks}

	if *watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir(), filepath.Join(prefabs.DiskDir(), "scripts"))
		if err != nil {
			logger.Warn("headless: hot reload disabled", "err", err)
		} else {
			r.watcher = w
			defer w.Close()
		}
	}

	if *withSound {
		s, err := newSound()
		if err != nil {
			logger.Warn("headless: sound disabled", "err", err)
		} else {
			r.sound = s
			defer s.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *tui {
		err = r.runTUI(ctx)
	} else {
		err = r.runBatch(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	hud := m.HUD()
	logger.Info("headless: finished",
		"match", m.ID(),
		"seed", m.Seed(),
		"ticks", r.played,
		"round", hud.Round,
		"score", hud.Score,
		"time", hud.Time,
		"game_over", hud.GameOver,
		"cues", r.sound.Played(),
	)
	return nil
}

func (r *runner) done() bool {
	return r.match.GameOver() || (r.ticks > 0 && r.played >= r.ticks)
}

// runBatch plays as fast as possible in chunks, polling the watcher between
// chunks.
func (r *runner) runBatch(ctx context.Context) error {
	for !r.done() {
		chunk := reloadEvery
		if r.ticks > 0 && r.ticks-r.played < chunk {
			chunk = r.ticks - r.played
		}
		if err := r.match.Run(ctx, r.bot, chunk, r.onEvents); err != nil {
			return err
		}
		r.played += chunk
		r.drainReloads()
	}
	return nil
}

func (r *runner) onEvents(events []ecs.Event) {
	for _, e := range events {
		switch e.Type {
		case ecs.EventRoundAdvanced:
			if round, ok := e.Data.(ecs.RoundEvent); ok {
				r.logger.Info("headless: round", "round", round.Round, "difficulty", round.Difficulty)
			}
		case ecs.EventUpgradeApplied:
			r.logger.Info("headless: upgrade", "upgrade", e.Data)
		case ecs.EventPlayerDied:
			r.logger.Info("headless: player died")
		}
		r.sound.Play(e.Type)
	}
}

// drainReloads applies whatever the watcher reported since the last call.
func (r *runner) drainReloads() {
	if r.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-r.watcher.Events:
			if !ok {
				r.watcher = nil
				return
			}
			if filepath.Ext(name) == ".tengo" {
				if err := r.bot.Reload(); err != nil {
					r.logger.Warn("headless: bot reload failed", "err", err)
				}
				continue
			}
			_ = r.match.ReloadTemplates()
		case err, ok := <-r.watcher.Errors:
			if ok {
				r.logger.Warn("headless: watcher error", "err", err)
			}
		default:
			return
		}
	}
}
