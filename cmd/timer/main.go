package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/DanikVitek/timer-cli/internal/config"
	"github.com/DanikVitek/timer-cli/internal/countdown"
	"github.com/DanikVitek/timer-cli/internal/duration"
	"github.com/DanikVitek/timer-cli/internal/plain"
	"github.com/DanikVitek/timer-cli/internal/shutdown"
	"github.com/DanikVitek/timer-cli/internal/tui"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("TIMER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "timer <duration>",
		Short: "Countdown timer for the terminal",
		Long: `timer counts down a duration given in the "[[[d:]h:]m:]s[.ms]" colon
format (e.g. "90", "1:30", "1:2:3:4", "0:0:0:1.500").

In a terminal it runs a full-screen countdown in the alternate screen:
p or space pauses and resumes, q or ctrl+c stops early. Outside a
terminal (or with --plain) it prints one remaining-time line per second
instead.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
				logger.Debug("verbose logging enabled")
			}

			// Parse before touching the terminal; bad input must fail
			// without entering the alternate screen.
			d, err := duration.Parse(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Apply CLI flag overrides (only if explicitly set)
			if cmd.Flags().Changed(FlagLogFile) {
				cfg.Paths.Log = viper.GetString(FlagLogFile)
			}
			if cmd.Flags().Changed(FlagProgress) {
				cfg.UI.ProgressBar = viper.GetBool(FlagProgress)
			}
			if cmd.Flags().Changed(FlagPlain) {
				cfg.UI.Plain = viper.GetBool(FlagPlain)
			}

			// Plain mode: explicit request, or stderr is not a terminal.
			plainMode := cfg.UI.Plain
			if !plainMode && !cmd.Flags().Changed(FlagPlain) {
				plainMode = !term.IsTerminal(int(os.Stderr.Fd()))
			}

			session := countdown.New(d)

			logger.Debug("timer starting",
				"version", version,
				"initial", duration.Format(d),
				"plain", plainMode,
			)

			if plainMode {
				return runPlain(cmd.Context(), session, logger)
			}
			return runTUI(session, cfg, logLevel)
		},
	}

	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: ~/.config/timer-cli/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Debug log file path for TUI mode")
	rootCmd.Flags().Bool(FlagPlain, false, "Print one line per tick instead of the full-screen display")
	rootCmd.Flags().Bool(FlagProgress, true, "Show the elapsed-fraction progress bar")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("timer %s\n", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runPlain counts down on stderr without the alternate screen. The
// interrupt signal is the only stop trigger; the runner stops the
// session itself when its context is canceled.
func runPlain(ctx context.Context, session *countdown.Session, logger *slog.Logger) error {
	runner := plain.New(session, os.Stderr, logger)

	err := shutdown.RunWithGracefulShutdown(
		ctx,
		logger,
		5*time.Second,
		runner.Run,
		func(context.Context) error { return nil },
	)
	if err != nil {
		return err
	}

	printOutcome(os.Stderr, session.State(), session.Remaining(), session.Elapsed())
	return nil
}

// runTUI runs the full-screen countdown. Logging is redirected to a
// rotating file first so slog output cannot corrupt the display.
func runTUI(session *countdown.Session, cfg *config.Config, logLevel slog.Leveler) error {
	logResult, err := SetupTUILogger(cfg.Paths.Log, logLevel, cfg.LogRotation)
	if err != nil {
		return err
	}
	defer func() { _ = logResult.Close() }()
	slog.SetDefault(logResult.Logger)

	app := tui.New(session,
		tui.WithProgressBar(cfg.UI.ProgressBar),
		tui.WithOnPause(func() { logResult.Logger.Debug("countdown paused") }),
		tui.WithOnResume(func() { logResult.Logger.Debug("countdown resumed") }),
		tui.WithOnQuit(func() { logResult.Logger.Debug("countdown stopped by user") }),
	)

	outcome, err := app.Run()
	if err != nil {
		return err
	}

	// The alternate screen is gone by now; this lands on the primary
	// screen.
	printOutcome(os.Stderr, outcome.State, outcome.Remaining, outcome.Elapsed)
	return nil
}

// printOutcome writes the completion message for a finished or stopped
// countdown.
func printOutcome(w io.Writer, state countdown.State, remaining, elapsed time.Duration) {
	if state == countdown.StoppedByUser {
		fmt.Fprintf(w, "Timer stopped by user at %s (elapsed %s).\n",
			duration.Format(remaining), duration.Format(elapsed))
		return
	}
	fmt.Fprintln(w, "Timer finished!")
}
