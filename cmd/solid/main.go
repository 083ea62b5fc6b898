// Command solid computes team payroll costs, checks user access, renders
// posts and measures shapes, and can run the payroll Temporal worker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-solid/internal/config"
	"github.com/ahrav/go-solid/internal/logger"
)

var (
	cfg config.Config
	log *logger.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "solid",
		Short:         "Payroll cost calculator and companion tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if log == nil {
				log, err = logger.New(cfg.LogMode)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				log.Sync()
			}
		},
	}

	root.AddCommand(
		newTotalCmd(),
		newAccessCmd(),
		newConvertCmd(),
		newShapeCmd(),
		newWorkerCmd(),
		newRunCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
