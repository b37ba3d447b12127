package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/search"
	"github.com/fwojciec/cmdref/toml"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Running it without a subcommand opens
// the interactive browser.
func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cmdref",
		Short:         "Browse a reference of command-line tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Browse(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/cmdref/config.toml)")
	flags.StringVar(&app.CorpusDir, "corpus", "", "corpus directory (default embedded corpus)")
	flags.StringVar(&app.Platform, "platform", "", "platform id to filter by")
	flags.BoolVar(&app.Debug, "debug", false, "write a debug log")
	flags.BoolVar(&app.Strict, "strict", false, "reject corpora that fail validation")

	cmd.AddCommand(
		newSearchCmd(app),
		newShowCmd(app),
		newCopyCmd(app),
		newPlatformsCmd(app),
		newConfigCmd(app),
	)
	return cmd
}

func newSearchCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "List commands matching a query",
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := app.LoadCorpus(cmd.Context())
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results := search.Filter(corpus.Commands, query, app.Config().DefaultPlatform)
			if len(results) == 0 && strings.TrimSpace(query) != "" {
				return fmt.Errorf("%w %q", ErrNoResults, query)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, c := range results {
				fmt.Fprintf(out, "%-16s %-9s %s\n", c.Name, c.Safety, c.Subtitle)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the full reference for a command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(cmd, app, args[0])
			if err != nil {
				return err
			}
			markdown := (&cmdref.MarkdownFormatter{}).Format(c)
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), markdown)
				return err
			}
			rendered, err := app.RenderMarkdown(app.Config(), markdown)
			if err != nil {
				return fmt.Errorf("render %s: %w", c.Name, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	return cmd
}

func newCopyCmd(app *App) *cobra.Command {
	var example int
	cmd := &cobra.Command{
		Use:   "copy <name>",
		Short: "Copy a command's syntax pattern or an example to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(cmd, app, args[0])
			if err != nil {
				return err
			}
			text := c.SyntaxPattern
			if example > 0 {
				if example > len(c.Examples) {
					return fmt.Errorf("%s has %d examples, not %d", c.Name, len(c.Examples), example)
				}
				text = c.Examples[example-1].Command
			}

			fb := app.Feedback()
			ok := fb.Copy(cmd.Context(), text, "", "")
			fmt.Fprintln(cmd.OutOrStdout(), fb.State().Message)
			if !ok {
				return ErrCopyFailed
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&example, "example", "e", 0, "copy the Nth example instead of the syntax pattern")
	return cmd
}

func newPlatformsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List platforms by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := app.LoadCorpus(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			categories, groups := corpus.PlatformsByCategory()
			for i, category := range categories {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s:\n", category)
				for _, p := range groups[category] {
					fmt.Fprintf(out, "  %-12s %s\n", p.ID, p.Name)
				}
			}
			return nil
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.Encode(cmd.OutOrStdout(), app.Config())
		},
	}
}

func lookup(cmd *cobra.Command, app *App, name string) (cmdref.Command, error) {
	corpus, err := app.LoadCorpus(cmd.Context())
	if err != nil {
		return cmdref.Command{}, err
	}
	c, ok := corpus.Lookup(name)
	if !ok {
		return cmdref.Command{}, fmt.Errorf("%w: %s", cmdref.ErrCommandNotFound, name)
	}
	return c, nil
}
