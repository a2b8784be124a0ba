// runner is a terminal side-scrolling runner: jump obstacles, grab
// coins, survive as long as you can.
//
// Usage:
//
//	runner play              - Play in the current terminal
//	runner scores            - Show the best runs
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
//	--config <path> - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - an endless runner in your terminal",
	Long: `Runner is a terminal endless-runner. Jump over cacti and rocks,
collect coins and gems, and chase your high score.

Available commands:
  play     - Play in the current terminal
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --preset hard
  runner scores
  runner serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
