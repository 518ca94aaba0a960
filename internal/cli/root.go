package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BuzzLyutic/task-list/internal/config"
)

// NewRootCmd builds the command tree. Persistent flags are bound to viper and
// win over the environment and the config file.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "task-list",
		Short:         "Personal task list with a web page, a terminal UI and a CLI",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a yaml config file (CONFIG_FILE)")
	flags.String("storage", "", "Storage driver: file, postgres, mysql, memory (STORAGE_DRIVER)")
	flags.String("data-dir", "", "Directory for the file driver (DATA_DIR)")
	flags.String("key", "", "Key the task list is stored under (STORAGE_KEY)")
	flags.String("log-level", "", "debug, info, warn, error (LOG_LEVEL)")

	_ = viper.BindPFlag(config.KeyConfigFile, flags.Lookup("config"))
	_ = viper.BindPFlag(config.KeyStorageDriver, flags.Lookup("storage"))
	_ = viper.BindPFlag(config.KeyDataDir, flags.Lookup("data-dir"))
	_ = viper.BindPFlag(config.KeyStorageKey, flags.Lookup("key"))
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newServeCmd(),
		newTUICmd(),
		newListCmd(),
		newAddCmd(),
		newToggleCmd("done", "Mark a task as completed", true),
		newToggleCmd("undo", "Mark a task as not completed", false),
		newRemoveCmd(),
	)
	return rootCmd
}

// Execute runs the root command with the version injected via ldflags.
func Execute(version string) error {
	return NewRootCmd(version).ExecuteContext(context.Background())
}
