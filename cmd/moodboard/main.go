// Command moodboard opens an infinite canvas of post-its, swatches, text
// and images that can be selected, rubber-band selected and dragged.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phanxgames/moodboard/canvas"
	"github.com/phanxgames/moodboard/internal/config"
	"github.com/phanxgames/moodboard/internal/log"
	"github.com/phanxgames/moodboard/web"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "moodboard: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("moodboard", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags.Path)
	if err != nil {
		return err
	}
	if cfg, err = config.ApplyFlags(cfg, flags); err != nil {
		return err
	}

	logger := log.New(os.Stderr, log.LevelFromString(cfg.LogLevel))
	logger.Debugf("config: %+v", cfg)

	c, err := canvas.New(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Script != "" {
		runner, err := canvas.LoadScriptFile(cfg.Script)
		if err != nil {
			return err
		}
		c.SetScript(runner)
		c.ExitOnScriptEnd(flags.Script != "")
		logger.Infof("script: running %s", cfg.Script)
	}
	web.Register(c, logger)

	return canvas.Run(c)
}
