package cmd

import (
	"github.com/mcpconf/cli/internal/editors"
	"github.com/mcpconf/cli/internal/open"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	editor = utils.EnumFlag{
		Allowed: editors.IDs(),
	}

	openCmd = &cobra.Command{
		GroupID: groupClients,
		Use:     "open [client-id]",
		Short:   "Open a client's config file in an editor",
		Long:    "Open a client's config file with the default editor, or with the editor named by --editor.",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return open.Run(cmd.Context(), afero.NewOsFs(), clientArg(args), editor.Value, newLauncher())
		},
	}

	revealCmd = &cobra.Command{
		GroupID: groupClients,
		Use:     "reveal [client-id]",
		Short:   "Show a client's config file in the file browser",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return open.Reveal(cmd.Context(), afero.NewOsFs(), clientArg(args), newLauncher())
		},
	}

	copyPathCmd = &cobra.Command{
		GroupID: groupClients,
		Use:     "copy-path [client-id]",
		Short:   "Copy a client's config file path to the clipboard",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return open.CopyPath(cmd.Context(), afero.NewOsFs(), clientArg(args), newLauncher())
		},
	}

	docsCmd = &cobra.Command{
		GroupID: groupClients,
		Use:     "docs [client-id]",
		Short:   "Open a client's MCP documentation in the browser",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return open.Docs(cmd.Context(), afero.NewOsFs(), clientArg(args), newLauncher())
		},
	}
)

func init() {
	openCmd.Flags().VarP(&editor, "editor", "e", "Editor to open the file with.")
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(revealCmd)
	rootCmd.AddCommand(copyPathCmd)
	rootCmd.AddCommand(docsCmd)
}

// An empty id prompts for a client on interactive terminals.
func clientArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
