// Package cmd holds the eventhub-cli command tree. The root command runs the
// terminal UI; the subcommands cover the same catalog and session from a
// plain shell.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"eventhub-cli/catalog"
	"eventhub-cli/config"
	"eventhub-cli/service"
	"eventhub-cli/tui"
)

const appName = "eventhub-cli"

type cli struct {
	version string
	commit  string

	site string
	view string

	cfg     config.Config
	variant catalog.Variant
	logFile *os.File
}

// Execute runs the command tree against os.Args.
func Execute(version string, commit string) error {
	return newRootCmd(version, commit).Execute()
}

func newRootCmd(version string, commit string) *cobra.Command {
	c := &cli{version: version, commit: commit}

	root := &cobra.Command{
		Use:               appName,
		Short:             "Афиша и бронирование мест в терминале",
		Long:              `Browse the event catalog, pick seats on the hall map, collect them in a cart and check out, all from the terminal.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: c.teardown,
		RunE:              c.runTUI,
	}
	root.PersistentFlags().StringVar(&c.site, "site", "", "site variant: dance or concert (overrides EVENTHUB_SITE)")
	root.Flags().StringVar(&c.view, "view", "home", "start view: "+strings.Join(tui.Views(), ", "))

	root.AddCommand(
		c.eventsCmd(),
		c.registerCmd(),
		c.accountCmd(),
		c.logoutCmd(),
		c.versionCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and routes the
// standard logger to EVENTHUB_LOG_FILE (or nowhere, since stdout belongs to
// the UI).
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.site != "" {
		cfg.Site = strings.ToLower(c.site)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	variant, err := catalog.ParseVariant(cfg.Site)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.variant = variant

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(cfg.LogFile, appName)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	c.logFile = f
	log.Printf("[cli] action=start command=%s site=%s backend=%s", cmd.Name(), cfg.Site, cfg.SessionBackend)
	return nil
}

func (c *cli) teardown(cmd *cobra.Command, args []string) {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	if !tui.ValidView(c.view) {
		return fmt.Errorf("unknown view %q: want one of %s", c.view, strings.Join(tui.Views(), ", "))
	}

	sessions, closeSessions, err := openSessions(contextOf(cmd), c.cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	opts := tui.Options{
		Site:       catalog.Load(c.variant),
		Sessions:   sessions,
		CatalogTTL: c.cfg.CatalogTTL,
		ToastTTL:   c.cfg.ToastTTL,
		StartView:  c.view,
	}
	if c.cfg.CatalogURL != "" {
		opts.Client = service.NewClient(nil, c.cfg.CatalogURL)
	}

	if _, err := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithContext(contextOf(cmd))).Run(); err != nil {
		return err
	}
	return nil
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of eventhub-cli",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s", appName, c.version)
			if c.commit != "none" && c.commit != "" {
				fmt.Fprintf(out, " (%s)", c.commit)
			}
			fmt.Fprintln(out)
		},
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
