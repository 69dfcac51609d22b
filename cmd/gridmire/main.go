package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gridmire/gridmire/audio"
	"github.com/gridmire/gridmire/config"
	"github.com/gridmire/gridmire/engine"
)

var configFlag = flag.String("config", "", "path to config file (default: per-user config dir)")

func main() {
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridmire: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridmire: failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "gridmire: failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash; otherwise the
	// stack trace lands on a raw alternate screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "gridmire crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	sounds := audio.NewPlayer(cfg.Audio.Enabled)

	session, err := engine.NewSession(screen, cfg, sounds, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "gridmire: %v\n", err)
		os.Exit(1)
	}

	err = session.Run()
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridmire: %v\n", err)
		os.Exit(1)
	}
}
