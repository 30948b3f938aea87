package main

import (
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v2"

	"chosenoffset.com/scavenger/dice"
	"chosenoffset.com/scavenger/gamestate"
	"chosenoffset.com/scavenger/internal/game"
	"chosenoffset.com/scavenger/internal/render"
	ebitenrender "chosenoffset.com/scavenger/internal/render/ebiten"
	"chosenoffset.com/scavenger/internal/render/terminal"
	"chosenoffset.com/scavenger/internal/simulation"
	"chosenoffset.com/scavenger/session"
)

const (
	appName  = "scavenger"
	tileSize = 48
)

// loadConfig applies the global flags on top of the config file.
func loadConfig(ctx *cli.Context) (*simulation.Config, error) {
	cfg, err := simulation.LoadConfig(ctx.String("config"))
	if err != nil {
		return nil, err
	}
	switch {
	case ctx.IsSet("seed"):
		cfg.Seed = ctx.Int64("seed")
	case cfg.Seed == 0:
		cfg.Seed = time.Now().UnixNano()
	}
	if ctx.IsSet("level") {
		cfg.Level = ctx.Int("level")
	}
	return cfg, nil
}

// newSession builds a session from the flags, attaching the progress store
// when --save or --resume is given.
func newSession(ctx *cli.Context, opts ...session.Option) (*session.Session, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if ctx.Bool("save") || ctx.Bool("resume") {
		store, err := gamestate.Open(appName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, session.WithStore(store))
		if ctx.Bool("resume") {
			if level, food, ok := store.Resume(); ok {
				log.Printf("Resuming day %d with %d food", level, food)
				opts = append(opts, session.WithResume(level, food))
			} else {
				log.Println("No saved run, starting fresh")
			}
		}
	}
	log.Printf("Seed %d", cfg.Seed)
	return session.New(cfg, opts...)
}

func play(ctx *cli.Context) error {
	s, err := newSession(ctx)
	if err != nil {
		return err
	}

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	view := render.NewView(game.NewDirector(s), renderer, inputMgr, tileSize)
	width, height := view.Layout(0, 0)
	engine.SetWindowSize(width, height)
	engine.SetWindowTitle("Scavenger")
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	return engine.RunGame(view)
}

func tui(ctx *cli.Context) error {
	s, err := newSession(ctx, session.WithAutoSettle(true))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	runCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return terminal.New(screen, game.NewDirector(s)).Run(runCtx)
}

func sim(ctx *cli.Context) error {
	s, err := newSession(ctx, session.WithAutoSettle(true))
	if err != nil {
		return err
	}
	walker := dice.NewSeededRoller(s.Config().Seed + 1)
	sum, err := game.Autoplay(s, walker, ctx.Int("turns"))
	if err != nil {
		return err
	}
	ending := "turn limit reached"
	if sum.Starved {
		ending = "starved"
	}
	log.Printf("Run %s: %s after %d turns on day %d, %d levels cleared, %d food left",
		s.RunID(), ending, sum.Turns, s.Level(), sum.Levels, sum.Food)
	return nil
}

func writeConfig(ctx *cli.Context) error {
	path := ctx.String("config")
	if ctx.Args().Present() {
		path = ctx.Args().First()
	}
	if err := simulation.DefaultConfig().Save(path); err != nil {
		return err
	}
	log.Printf("Wrote default config to %s", path)
	return nil
}
