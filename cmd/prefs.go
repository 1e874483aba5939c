package cmd

import (
	"fmt"

	"github.com/mcpconf/cli/internal/keys/derived"
	"github.com/mcpconf/cli/internal/prefs/edit"
	"github.com/mcpconf/cli/internal/prefs/show"
	"github.com/mcpconf/cli/internal/utils/flags"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	prefsCmd = &cobra.Command{
		GroupID: groupPreferences,
		Use:     "prefs",
		Short:   "Manage mcpconf preferences",
	}

	prefsPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the location of the preference file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(flags.PreferencePath())
		},
	}

	prefsShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective preferences",
		Long:  "Show preferences read from the file and MCPCONF_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return show.Run(cmd.Context(), afero.NewOsFs())
		},
	}

	prefsEditCmd = &cobra.Command{
		Use:   "edit",
		Short: "Edit the preference file in $VISUAL or $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit.Run(cmd.Context(), afero.NewOsFs())
		},
	}

	keysCmd = &cobra.Command{
		GroupID: groupPreferences,
		Use:     "keys",
		Short:   "List the preference keys read for every client and editor",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return derived.Run()
		},
	}
)

func init() {
	prefsCmd.AddCommand(prefsPathCmd)
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsEditCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(keysCmd)
}
