package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/playperu/trivia/internal/client"
	"github.com/playperu/trivia/internal/config"
	"github.com/playperu/trivia/internal/view"
)

type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Client
	api        *client.Client
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewClientViper()}

	cmd := &cobra.Command{
		Use:   "trivia",
		Short: "Browse, search and curate trivia questions",
		Long: `trivia opens a terminal browser over a trivia API: page through
questions, filter by category, search, and delete questions.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		RunE:              a.browse,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/trivia/config.yaml)")
	flags.String("api-url", "", "base URL of the trivia API")
	flags.Duration("timeout", 0, "per-request timeout")
	cmd.Flags().String("log-file", "", "write debug logs to this file")

	_ = a.v.BindPFlag("api-url", flags.Lookup("api-url"))
	_ = a.v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("log-file", cmd.Flags().Lookup("log-file"))

	cmd.AddCommand(newAddCmd(a), newQuizCmd(a))
	return cmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadClient(a.v, a.configPath)
	if err != nil {
		return err
	}
	api, err := client.New(cfg.APIURL, client.WithTimeout(cfg.Timeout))
	if err != nil {
		return err
	}
	a.cfg, a.api = cfg, api
	return nil
}

func (a *app) browse(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if a.cfg.LogFile != "" {
		f, err := tea.LogToFile(a.cfg.LogFile, "trivia")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	logger.Info("starting question browser", "api_url", a.cfg.APIURL)

	ctrl := view.NewController(cmd.Context(), a.api, logger)
	p := tea.NewProgram(view.NewModel(ctrl), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running question browser: %w", err)
	}
	return nil
}
