package main

import (
	"fmt"
	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/shared/logger"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the front desk database schema",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return helper.Up(cfg)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return helper.Down(cfg)
			},
		},
		&cobra.Command{
			Use:   "drop",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return helper.Drop(cfg)
			},
		},
		&cobra.Command{
			Use:   "step N",
			Short: "Apply N migrations, or roll back when N is negative",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil || n == 0 {
					return fmt.Errorf("step count must be a non-zero integer, got %q", args[0])
				}

				return helper.Steps(cfg, n)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied migration version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				version, dirty, err := helper.Version(cfg)
				if err != nil {
					return err
				}

				cmd.Printf("version %d (dirty: %t)\n", version, dirty)

				return nil
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
}
