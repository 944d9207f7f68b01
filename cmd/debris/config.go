package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-debris/internal/config"
)

var flagConfigWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.
Flags such as --config, --difficulty and --tps are applied first.

Examples:
  debris config
  debris config --difficulty hard
  debris config --write ~/.debris/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", "Write the configuration to this file instead of stdout")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}

	if flagConfigWrite == "" {
		os.Stdout.Write(data)
		return
	}

	path := expandHome(flagConfigWrite)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fatal("cannot create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fatal("cannot write config: %v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}
