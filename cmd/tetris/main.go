// tetris is a terminal falling-block game, playable locally or over SSH.
//
// Usage:
//
//	tetris play              - Play in the current terminal
//	tetris serve             - Start SSH server for remote play
//	tetris sessions          - Show recorded play sessions
//	tetris list              - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - Play falling blocks in your terminal",
	Long: `Tetris is a terminal-based falling-block game.

Available commands:
  play      - Play in the current terminal
  serve     - Start SSH server for remote play
  sessions  - View recorded play sessions
  list      - Show registered games

Examples:
  tetris play
  tetris play --config ./my-level.yaml
  tetris serve --ssh :2222
  tetris sessions --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/sessions.db", "Path to sessions database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}
