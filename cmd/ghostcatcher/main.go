// ghostcatcher is a terminal game: catch falling ghosts with the mouse,
// dodge bombs and grab nets to freeze the field.
//
// Usage:
//
//	ghostcatcher play        - Play in the local terminal
//	ghostcatcher serve       - Start SSH server for remote play
//	ghostcatcher history     - Browse the round journal
//	ghostcatcher list        - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible spawns
//	--db <path>     - Round journal path (empty disables the journal)
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/ghost-catcher/internal/games/ghostcatch"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghostcatcher",
	Short: "Ghost Catcher - catch falling ghosts in your terminal",
	Long: `Ghost Catcher is a 30 second tap game for the terminal.

Click ghosts to score, avoid bombs, and click a net to freeze
every sprite on the field for five seconds.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  history  - Browse recorded rounds
  list     - Show registered games

Examples:
  ghostcatcher play
  ghostcatcher play --difficulty hard
  ghostcatcher play --db ~/.ghostcatcher/rounds.db
  ghostcatcher serve --ssh :2222
  ghostcatcher history --db ~/.ghostcatcher/rounds.db`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to round journal (empty = no journal)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

func logLevel() log.Level {
	if flagDebug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// newLogger builds the stderr logger shared by the subcommands.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel(),
	})
}
