package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vaultpass/pwgen-go/internal/clipboard"
	"github.com/vaultpass/pwgen-go/internal/config"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/service"
	"github.com/vaultpass/pwgen-go/internal/tui"
)

// runProgram is swapped in tests so the interactive widget never takes over the terminal.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func main() {
	loadDotEnv()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "pwgen:", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg, clipboard.System{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDotEnv runs before the widget owns the terminal, so the warning is
// still visible.
func loadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}
}

func newRootCmd(cfg config.Config, cb clipboard.Writer) *cobra.Command {
	var closeLog func() error

	root := &cobra.Command{
		Use:   "pwgen",
		Short: "Generate random passwords and rate their strength",
		Long: `pwgen generates random passwords from letters, with optional digits
and symbols, and labels each one Weak, Medium or Strong.

Run without arguments to open the interactive widget.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			closeLog, err = setupLogging(cfg.LogFile)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			widget, err := service.NewWidget(
				crypto.NewGenerator(cfg.Source()),
				clipboard.NewCopier(cb, cfg.CopyReset),
				cfg.Defaults,
			)
			if err != nil {
				return err
			}
			defer widget.Close()

			return runProgram(tui.New(widget, cfg.CopyReset))
		},
	}

	root.AddCommand(newGenerateCmd(cfg, cb))
	return root
}

// setupLogging points slog at path, or discards logs when path is empty
// since the widget owns the terminal.
func setupLogging(path string) (func() error, error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f.Close, nil
}
