package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/glabrego/cinemas-cli/internal/app"
	"github.com/glabrego/cinemas-cli/internal/catalog"
	"github.com/glabrego/cinemas-cli/internal/config"
	"github.com/glabrego/cinemas-cli/internal/logging"
	"github.com/glabrego/cinemas-cli/internal/rapidmock"
	"github.com/glabrego/cinemas-cli/internal/tui"
)

// cli holds what PersistentPreRunE builds for the command that runs.
type cli struct {
	cfgFile  string
	apiURL   string
	logLevel string

	cfg     *config.Config
	logger  zerolog.Logger
	logFile *os.File
	service *app.Service
	engine  *catalog.Engine
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "cinemas",
		Short: "Browse a movie and show catalog from the terminal",
		Long: `cinemas browses a remote movie and show catalog.

Without a subcommand it starts the terminal UI: search and sort the
catalog, open details, and mark titles as Watched or To Watch. The
subcommands run the same requests once and print the result.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initialize,
		PersistentPostRun: func(*cobra.Command, []string) { c.close() },
		RunE:              c.runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is ./config.yaml or ~/.config/cinemas/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "override api.base_url")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override logging.level (debug, info, warn, warning, error)")

	rootCmd.AddCommand(
		newCatalogCmd(c),
		newMyListCmd(c),
		newShowCmd(c),
		newAddCmd(c),
	)
	return rootCmd
}

func (c *cli) initialize(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL = c.apiURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.cfg = cfg

	// The TUI owns the terminal, so only subcommands log to stderr.
	var w io.Writer = cmd.ErrOrStderr()
	if cmd == cmd.Root() {
		f, err := logging.OpenFile(cfg.Logging.File)
		if err != nil {
			return err
		}
		c.logFile = f
		w = f
	}
	c.logger = logging.New(cfg.Logging, w)

	client := rapidmock.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.HTTP.Timeout}, c.logger)
	c.service = app.NewService(client, c.logger)
	c.engine = catalog.NewEngine(cfg.MatchMode(), cfg.Locale())

	c.logger.Debug().
		Str("command", cmd.Name()).
		Str("api", cfg.API.BaseURL).
		Str("search_mode", string(c.engine.Mode())).
		Msg("initialized")
	return nil
}

func (c *cli) close() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}

func (c *cli) runTUI(cmd *cobra.Command, _ []string) error {
	model := tui.NewModel(c.service, tui.Options{
		Routes:     tui.DefaultRoutes(),
		Engine:     c.engine,
		Categories: c.cfg.Categories(),
		Timeout:    c.cfg.HTTP.Timeout,
		Profile:    tui.ProfileInfo{
			APIBaseURL: c.cfg.API.BaseURL,
			LogFile:    c.cfg.Logging.File,
		},
		Logger: c.logger,
	})

	c.logger.Info().Str("version", version).Msg("starting tui")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
