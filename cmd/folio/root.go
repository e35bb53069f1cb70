package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/renato0307/folio/internal/app"
	"github.com/renato0307/folio/internal/config"
	"github.com/renato0307/folio/internal/content"
	"github.com/renato0307/folio/internal/logging"
	"github.com/renato0307/folio/internal/storage"
	"github.com/renato0307/folio/internal/theme"
	"github.com/renato0307/folio/internal/types"
	"github.com/renato0307/folio/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// session is what every command shares once flags are parsed.
type session struct {
	manager *config.Manager
	config  *config.Config
	log     *logging.Logger
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		s       session
	)

	root := &cobra.Command{
		Use:   "folio",
		Short: "A personal portfolio page for the terminal",
		Long: `folio renders a portfolio page (hero, about, services and projects) as an
animated terminal UI. The light/dark appearance is remembered across runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager(cfgFile)
			if err != nil {
				return err
			}
			if err := manager.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := manager.Load(); err != nil {
				return err
			}
			cfg := manager.Get()

			if err := logging.Init(cfg.Log.Logging()); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			if cfg.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			s = session{manager: manager, config: cfg, log: logging.For("main")}
			s.log.Debug("configuration loaded", "file", manager.FileUsed(), "theme", cfg.Theme, "storage", cfg.Storage)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Shutdown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/folio/config.toml)")
	f.String("theme", "", "color palette: default, dracula, nord")
	f.String("storage", "", "preference storage: file, sqlite, memory")
	f.String("state-dir", "", "directory holding stored preferences")
	f.String("content", "", "YAML file replacing the built-in page content")
	f.Bool("no-color", false, "disable colors")
	f.Bool("snapshot", false, "print the settled page once and exit")
	f.Int("width", 0, "page width in snapshot mode")
	f.String("log-file", "", "write logs to this file")
	f.String("log-level", "", "log level: debug, info, warn, error")
	f.String("log-format", "", "log format: text, json")

	root.AddCommand(newThemeCmd(&s), newVersionCmd())
	return root
}

// openStore opens the configured backend. Failure degrades to a store that
// keeps nothing, so the page still works with the default mode.
func (s *session) openStore() storage.Storage {
	st, err := storage.Open(storage.Kind(s.config.Storage), s.config.StateDir)
	if err != nil {
		s.log.Warn("preferences will not persist", "storage", s.config.Storage, "error", err)
		return storage.Disabled{}
	}
	return st
}

func (s *session) run(cmd *cobra.Command) error {
	st := s.openStore()
	defer st.Close()

	page, err := content.Load(s.config.Content)
	if err != nil {
		return err
	}

	ctx := types.NewAppContext(ui.GetTheme(s.config.Theme), theme.New(st), page)

	if s.config.Snapshot || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(cmd.OutOrStdout(), app.Snapshot(ctx, s.config.Width))
		return nil
	}

	model := app.NewModel(ctx)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	s.manager.OnConfigChange(func(c *config.Config) {
		p.Send(types.PaletteChangedMsg{Name: c.Theme})
	})
	s.manager.Watch()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of folio",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", Version)
		},
	}
}
