package cmd

import (
	"github.com/mcpconf/cli/internal/list"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	watch bool

	listCmd = &cobra.Command{
		GroupID: groupClients,
		Use:     "list",
		Short:   "List known MCP clients and their config files",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return list.Watch(cmd.Context(), afero.NewOsFs())
			}
			return list.Run(cmd.Context(), afero.NewOsFs())
		},
	}
)

func init() {
	listCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render whenever the preference file changes.")
	rootCmd.AddCommand(listCmd)
}
