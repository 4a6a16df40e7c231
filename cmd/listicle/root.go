// Root command for the listicle CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/listicle/internal/paths"
	"github.com/dukaforge/listicle/internal/store"
)

const version = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// st is the store every subcommand operates on, built by PersistentPreRunE
// from the resolved data directory.
var st *store.Store

var rootCmd = &cobra.Command{
	Use:     "listicle",
	Short:   "Listicle keeps custom-schema collections as Markdown files",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
		if err != nil {
			return err
		}

		st = store.New(dataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(tuiCmd)
}
