package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the settings a game would start with, after the config file
search and the difficulty preset are applied. The output is valid YAML
and can be saved as ~/.mazechase/configs/mazechase.yaml.

Examples:
  mazechase config
  mazechase config --difficulty hard
  mazechase config --defaults > mazechase.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := mazechase.LoadConfig()
	if err != nil {
		logger.Error("cannot load game config", "error", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
