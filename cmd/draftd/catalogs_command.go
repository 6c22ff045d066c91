package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"draftd/internal/catalog"
)

func newCatalogsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "catalogs [catalog]",
		Short: "List effect catalogs and their entries",
		Long: "Lists the entries of the effect catalogs (" + catalogNames() + ").\n" +
			"With no argument, all catalogs are listed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog store: %w", err)
			}
			defer store.Close()

			kinds := catalog.Kinds()
			if len(args) == 1 {
				kind := catalog.Kind(strings.TrimSpace(args[0]))
				if !kind.Valid() {
					return fmt.Errorf("unknown catalog %q (expected one of %s)", args[0], catalogNames())
				}
				kinds = []catalog.Kind{kind}
			}

			if jsonOutput {
				payload := make(map[string][]catalog.Entry, len(kinds))
				for _, kind := range kinds {
					entries, err := store.ListEntries(cmd.Context(), kind)
					if err != nil {
						return fmt.Errorf("list %s catalog: %w", kind, err)
					}
					payload[string(kind)] = entries
				}
				return writeJSON(cmd, payload)
			}

			titler := cases.Title(language.Und)
			out := cmd.OutOrStdout()
			for _, kind := range kinds {
				entries, err := store.ListEntries(cmd.Context(), kind)
				if err != nil {
					return fmt.Errorf("list %s catalog: %w", kind, err)
				}
				rows := make([][2]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, [2]string{entry.Name, entry.ResourceID})
				}
				title := titler.String(strings.ReplaceAll(string(kind), "_", " "))
				fmt.Fprintf(out, "%s (%d)\n", title, len(entries))
				fmt.Fprintln(out, renderCatalogTable(rows))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON")
	return cmd
}

func catalogNames() string {
	kinds := catalog.Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}

// stdoutIsTerminal reports whether stdout is attached to an interactive
// terminal. Table rendering falls back to plain ASCII borders when it is not.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
