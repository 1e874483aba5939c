package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mcpconf/cli/internal/launch"
	"github.com/mcpconf/cli/internal/prefs"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	groupClients     = "clients"
	groupPreferences = "preferences"
)

var (
	rootCmd = &cobra.Command{
		Use:     "mcpconf",
		Short:   "MCP client configuration launcher " + utils.Version,
		Version: utils.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx, _ := signal.NotifyContext(cmd.Context(), os.Interrupt)
			if viper.GetBool("DEBUG") {
				fmt.Fprintln(os.Stderr, cmd.Root().Short)
			} else {
				utils.CmdSuggestion = utils.SuggestDebugFlag
			}
			cmd.SetContext(ctx)
			return nil
		},
		SilenceErrors: true,
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.Red(err.Error()))
		if len(utils.CmdSuggestion) > 0 {
			fmt.Fprintln(os.Stderr, utils.CmdSuggestion)
		}
		os.Exit(1)
	}
	if len(utils.CmdSuggestion) > 0 && utils.CmdSuggestion != utils.SuggestDebugFlag {
		fmt.Fprintln(os.Stderr, utils.CmdSuggestion)
	}
}

func init() {
	cobra.OnInitialize(func() {
		viper.SetEnvPrefix(prefs.EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()
	})

	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "output debug logs to stderr")
	flags.String("prefs", "", "path to the preference file")
	flags.Duration("timeout", 30*time.Second, "maximum time to wait for a launched application")
	addOutputFlag(flags)
	cobra.CheckErr(viper.BindPFlags(flags))

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddGroup(&cobra.Group{ID: groupClients, Title: "Clients:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupPreferences, Title: "Preferences:"})
}

func addOutputFlag(flags *pflag.FlagSet) {
	flags.VarP(&utils.OutputFormat, "output", "o", "output format of the rendered result")
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func newLauncher() launch.Launcher {
	return launch.New(viper.GetDuration("TIMEOUT"))
}
