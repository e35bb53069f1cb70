package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/folio/internal/theme"
)

func newThemeCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the stored appearance mode",
	}

	// withStore runs fn against the stored mode and reports the result.
	withStore := func(fn func(*theme.Store)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			st := s.openStore()
			defer st.Close()

			store := theme.New(st)
			fn(store)
			fmt.Fprintln(cmd.OutOrStdout(), store.Mode())
			return nil
		}
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the stored mode",
		Args:  cobra.NoArgs,
		RunE:  withStore(func(*theme.Store) {}),
	}

	set := &cobra.Command{
		Use:       "set light|dark",
		Short:     "Store a mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := theme.ParseName(args[0])
			if !ok {
				return fmt.Errorf("unknown mode %q: must be light or dark", args[0])
			}
			return withStore(func(store *theme.Store) { store.Set(mode) })(cmd, args)
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Flip the stored mode",
		Args:  cobra.NoArgs,
		RunE:  withStore(func(store *theme.Store) { store.Toggle() }),
	}

	cmd.AddCommand(get, set, toggle)
	return cmd
}
