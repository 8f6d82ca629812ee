package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mordilloSan/go-clap-logger/logger"
)

// levelFlag adapts logger.Level to a command line flag.
type levelFlag struct {
	level logger.Level
}

var _ pflag.Value = (*levelFlag)(nil)

func (f *levelFlag) String() string { return f.level.String() }

func (f *levelFlag) Set(s string) error {
	level, err := logger.ParseLevel(s)
	if err != nil {
		return err
	}
	f.level = level
	return nil
}

func (f *levelFlag) Type() string { return "level" }

func levelNames() string {
	names := make([]string, 0, len(logger.AllLevels()))
	for _, level := range logger.AllLevels() {
		names = append(names, level.String())
	}
	return strings.Join(names, ", ")
}

func newRootCmd() *cobra.Command {
	level := &levelFlag{level: logger.TraceLevel}

	cmd := &cobra.Command{
		Use:   "go-clap-logger",
		Short: "Print one sample line per log level",
		Long: `Registers the console logger at the chosen level and logs one message
per level, followed by a log/slog call routed through the same logger.

Example:
  go-clap-logger --level info`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			logger.InitWithLevel(level.level)

			logger.Errorf("A error message")
			logger.Warnf("Danger!")
			logger.Infof("This program is currently running")
			logger.Debugf("Super important debug message")
			logger.Tracef("Adding 1 + 1")

			slog.Info("routed through log/slog", "level", level.level)
		},
	}
	cmd.Flags().VarP(level, "level", "l", "minimum level to print ("+levelNames()+")")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
