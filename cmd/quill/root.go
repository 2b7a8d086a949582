package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bethropolis/quill/internal/app"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:           config.AppName + " [file]",
		Short:         "A small terminal text editor",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filePath string
			if len(args) > 0 {
				filePath = args[0]
			}
			err := run(flags, filePath)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", config.AppName, err)
			}
			return err
		},
	}
	flags = config.BindFlags(cmd.Flags())
	return cmd
}

func run(flags *config.Flags, filePath string) error {
	cfg, cfgErr := config.LoadConfig(flags.ConfigFilePath, flags)

	logFile, err := openLogFile(cfg.Logger.LogFilePath)
	if err != nil {
		// Logging is optional; the editor still runs without it.
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
		logger.Init(cfg.Logger, io.Discard)
	} else {
		defer logFile.Close()
		logger.Init(cfg.Logger, logFile)
	}

	logger.Infof("Starting %s %s", config.AppName, version)
	if cfgErr != nil {
		logger.Warnf("Config: %v, using defaults", cfgErr)
	}
	cfg.LogUndecoded()
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	editorApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		return err
	}
	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return err
	}

	logger.Infof("%s finished.", config.AppName)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file '%s': %w", path, err)
	}
	return f, nil
}
