package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"draftd/internal/api"
	"draftd/internal/catalog"
	"draftd/internal/daemon"
	"draftd/internal/logging"
	"draftd/internal/registry"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the draft session daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			pidPath := filepath.Join(cfg.Paths.LogDir, "draftd.pid")
			if err := writePIDFile(pidPath); err != nil {
				return fmt.Errorf("write pid file: %w", err)
			}
			defer os.Remove(pidPath)

			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog store: %w", err)
			}
			defer store.Close()

			catalogSvc, err := catalog.NewService(signalCtx, store, logger)
			if err != nil {
				return fmt.Errorf("load catalogs: %w", err)
			}

			reg := registry.New(logger)
			draftSvc := api.NewDraftService(cfg, reg, catalogSvc, logger)

			d, err := daemon.New(cfg, draftSvc, logger)
			if err != nil {
				return fmt.Errorf("create daemon: %w", err)
			}
			logger.Info("draftd starting",
				logging.String("bind", cfg.Paths.APIBind),
				logging.String("catalog_db", store.Path()))
			return d.Run(signalCtx)
		},
	}
}

func writePIDFile(path string) error {
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0o644)
}
