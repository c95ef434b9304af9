// Sinewalk draws a triangle travelling along a sine wave. Drag it with the
// mouse, hold Ctrl while dragging to rotate it, and press Space to start or
// stop the animation. The panel in the top-left tunes speed, amplitude and
// cycle count.
//
// Keys: Space run/stop, F fullscreen, I image, P path, R reset, D debug, S screenshot,
// H hide panel.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phanxgames/sinewalk"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	script := flag.String("script", "", "test script to run (YAML or JSON)")
	exit := flag.Bool("exit", false, "exit when the script finishes")
	flag.Parse()

	cfg, err := sinewalk.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	dotenv, err := cfg.ApplyEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *script != "" {
		cfg.Script = *script
	}
	if *exit {
		cfg.ExitAfterScript = true
	}

	logger, err := sinewalk.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("config loaded", zap.String("path", *configPath), zap.Bool("dotenv", dotenv))

	if err := sinewalk.Run(cfg, logger); err != nil {
		logger.Error("exit", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
