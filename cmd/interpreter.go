package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/minsh-sh/minsh/core/config"
	"github.com/minsh-sh/minsh/core/interp"
	"github.com/minsh-sh/minsh/core/logger"
)

// runInterpreter wires the configuration into a session and runs the
// prompt loop on the process's terminal.
func runInterpreter() error {
	cfg, err := config.Load(afero.NewOsFs(), cfgPath)
	if err != nil {
		return err
	}

	sess := interp.NewSession(interp.NewSysops(), interp.ExecLauncher{})
	sess.Prompt = cfg.Prompt
	sess.Reap = cfg.ReapBackground
	if cfg.HomeOverride != "" {
		sess.Sys = interp.OverrideHome(sess.Sys, cfg.HomeOverride)
	}

	if cfg.LogPath != "" {
		logFd, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("opening event log: %w", err)
		}
		defer logFd.Close()
		sess.Events = logger.New(logFd)
	}

	return sess.Run()
}
