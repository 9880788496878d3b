package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tapsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration tapsnake would use, as YAML, along with where
it was loaded from. The output is a valid config file.

Search order:
  --config <path>, ~/.tapsnake/config.yaml, ./configs/snake.yaml, built-in defaults

Examples:
  tapsnake config
  tapsnake config > ~/.tapsnake/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
