// debris is a terminal arcade game: steer a rocket through the growing cloud
// of space garbage left behind by the space age.
//
// Usage:
//
//	debris                 - Start the menu
//	debris play            - Play a game directly
//	debris serve           - Start SSH server for remote play
//	debris scores          - Show the best runs
//	debris config          - Print the effective configuration
//
// Global flags:
//
//	--tps <rate>        - Override the tick rate (ticks per second)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.debris/scores.db)
//	--config <path>     - Load a YAML or TOML config file
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Log destination (default: ~/.debris/debris.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "debris",
	Short: "Space Debris - dodge the garbage of the space age",
	Long: `Space Debris is a terminal arcade game. Years pass from 1957 on, and
every decade leaves more garbage in orbit. Steer your rocket, survive as long
as you can, and once the plasma gun arrives in 2020, shoot back.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu (default)
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  debris
  debris play --difficulty hard
  debris play --backend tcell --sound speaker
  debris serve --ssh :2222
  debris scores`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.debris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.debris/debris.log", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with replacement sprites")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
