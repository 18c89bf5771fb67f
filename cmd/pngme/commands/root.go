// Package commands implements the pngme CLI commands.
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.NewEntry(logrus.StandardLogger()).WithField("component", "pngme")

// NewRootCmd returns the pngme command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbose bool
		logJSON bool
	)

	rootCmd := &cobra.Command{
		Use:   "pngme",
		Short: "Hide messages in PNG files",
		Long: `pngme hides messages in PNG files as ancillary chunks.

Example:
  pngme encode dice.png ruSt "This is a secret message!"
  pngme decode dice.png ruSt
  pngme remove dice.png ruSt
  pngme print dice.png`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}

			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			} else {
				logger.SetLevel(logrus.InfoLevel)
			}
			if logJSON {
				logger.SetFormatter(&logrus.JSONFormatter{})
			}

			if level := os.Getenv("PNGME_LOG_LEVEL"); level != "" {
				if lvl, err := logrus.ParseLevel(level); err == nil {
					logger.SetLevel(lvl)
				}
			}

			log = logger.WithField("component", "pngme")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Output logs in JSON format")

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newRemoveCmd(),
		newPrintCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		log.WithError(err).Error("command failed")
	}
	return err
}
