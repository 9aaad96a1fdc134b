package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagSessionsLimit   int
	flagSessionsLongest bool
	flagSessionsTUI     bool
	flagSessionsClear   bool
)

var emph = color.New(color.FgBlue, color.Bold).SprintFunc()
var warn = color.New(color.FgYellow, color.Bold).SprintFunc()

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recorded play sessions",
	Long: `Display recorded play sessions: when they happened, how many gravity
ticks they lasted, and how they ended.

Examples:
  tetris sessions
  tetris sessions --limit 20
  tetris sessions --longest
  tetris sessions --tui
  tetris sessions --clear`,
	Run: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 10, "Number of sessions to show")
	sessionsCmd.Flags().BoolVar(&flagSessionsLongest, "longest", false, "Order by longest run instead of most recent")
	sessionsCmd.Flags().BoolVar(&flagSessionsTUI, "tui", false, "Browse sessions interactively")
	sessionsCmd.Flags().BoolVar(&flagSessionsClear, "clear", false, "Delete all recorded sessions")
}

func runSessions(cmd *cobra.Command, args []string) {
	const gameID = "tetris"

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSessionsClear {
		if err := store.ClearSessions(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All sessions cleared.")
		return
	}

	if flagSessionsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var sessions []storage.SessionEntry
	if flagSessionsLongest {
		sessions, err = store.LongestSessions(gameID, flagSessionsLimit)
	} else {
		sessions, err = store.RecentSessions(gameID, flagSessionsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play %s to record the first one!\n", emph("tetris play"))
		return
	}

	data := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		outcome := s.Outcome
		if outcome == storage.OutcomeGameOver {
			outcome = warn(outcome)
		}
		data = append(data, []string{
			s.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", s.Ticks),
			outcome,
			s.Duration.String(),
		})
	}
	printTable([]string{"When", "Ticks", "Outcome", "Duration"}, data)

	stats, err := store.Stats(gameID)
	if err == nil && stats.SessionCount > 0 {
		fmt.Println()
		fmt.Printf("Sessions: %s   Longest: %s ticks   Average: %s ticks\n",
			emph(stats.SessionCount), emph(stats.LongestTicks), emph(fmt.Sprintf("%.0f", stats.AvgTicks)))
	}
}

// printTable renders rows in a borderless left-aligned table.
func printTable(header []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("     ")

	table.AppendBulk(data)

	table.Render()
}
