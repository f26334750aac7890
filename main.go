package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/twinstick/bot"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and collider overlay")
	seed := flag.Int64("seed", 0, "match seed (0 uses arena.yaml, then the clock)")
	script := flag.String("script", "", "let a tengo bot from prefabs/scripts play (basename, .tengo optional)")
	watch := flag.Bool("watch", true, "hot reload prefabs/*.yaml and scripts on change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("twinstick")

	cfg := GameConfig{
		Seed:   *seed,
		Debug:  *debug,
		Watch:  *watch,
		Logger: logger,
	}
	if *script != "" {
		b, err := bot.New(*script, logger)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Bot = b
	}

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
