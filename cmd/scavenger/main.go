package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "scavenger"
	app.Usage = "turn-based survival on a small grid"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "scavenger.yaml",
			Usage:   "game config file (defaults are used when it does not exist)",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed for level generation (default: config seed, or the clock)",
		},
		&cli.IntFlag{
			Name:  "level",
			Usage: "level to start on",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "record progress in the user data directory",
		},
		&cli.BoolFlag{
			Name:  "resume",
			Usage: "continue the saved run (implies --save)",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:   play,
			Name:     "play",
			Usage:    "Play in a window",
			Category: "game",
		},
		{
			Action:   tui,
			Name:     "tui",
			Usage:    "Play in the terminal",
			Category: "game",
		},
		{
			Action:   sim,
			Name:     "sim",
			Usage:    "Run a headless random-walk game and log every turn",
			Category: "tools",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "turns",
					Value: 1000,
					Usage: "stop after this many player turns",
				},
			},
			Description: "Plays without pacing or animation. Useful for checking balance " +
				"and reproducing a seed.",
		},
		{
			Action:    writeConfig,
			Name:      "config",
			Usage:     "Write the default config",
			ArgsUsage: "[path]",
			Category:  "tools",
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
