package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/folio"
)

var replayCmd = &cobra.Command{
	Use:   "replay <book> <script.json>",
	Short: "Replay an input script against a book and print its snapshots",
	Long: `Opens the book in a headless session, feeds it the scripted taps, swipes,
pinches, wheel steps and keys one frame at a time, and prints every snapshot
the script captures. Sound is always off.`,
	Args: cobra.ExactArgs(2),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Int("fps", 60, "simulated frames per second")
	replayCmd.Flags().Duration("timeout", time.Minute, "give up after this much simulated time")
	replayCmd.Flags().String("pattern", "**/*.{png,jpg,jpeg}", "image pattern when the book is a directory")
	replayCmd.Flags().Bool("json", false, "print snapshots as JSON")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Sound = false

	fps, _ := cmd.Flags().GetInt("fps")
	if fps <= 0 {
		return fmt.Errorf("--fps must be positive")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	pattern, _ := cmd.Flags().GetString("pattern")
	asJSON, _ := cmd.Flags().GetBool("json")

	b, err := openBook(args[0], pattern)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	runner, err := folio.LoadScript(data)
	if err != nil {
		return err
	}

	s, err := folio.NewSession(folio.Document{Title: args[0], Content: b, TOC: b}, cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	s.SetDebugMode(verbose)
	s.SetLogger(func(format string, a ...any) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[folio] "+format+"\n", a...)
	})

	snaps, err := replay(s, runner, time.Second/time.Duration(fps), timeout)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)
	}
	for _, ls := range snaps {
		printSnapshot(cmd.OutOrStdout(), ls)
	}
	return nil
}

// replay steps s at a fixed frame length until the script finishes, the
// viewer closes, or timeout elapses on the session clock.
func replay(s *folio.Session, r *folio.ScriptRunner, frame, timeout time.Duration) ([]folio.LabeledSnapshot, error) {
	s.SetScriptRunner(r)
	for elapsed := time.Duration(0); !r.Done() && !s.Closed(); elapsed += frame {
		if elapsed >= timeout {
			return r.Snapshots(), fmt.Errorf("script still running after %v", timeout)
		}
		s.Update(frame)
	}
	return r.Snapshots(), nil
}

func printSnapshot(w io.Writer, ls folio.LabeledSnapshot) {
	turn := "idle"
	if ls.Transition.Turning {
		turn = fmt.Sprintf("turning %s to %d", ls.Transition.Direction, ls.Transition.Target)
	}
	controls := "hidden"
	if ls.ControlsVisible {
		controls = "visible"
	}
	fmt.Fprintf(w, "%-12s page %d/%d  %s  zoom %.0f%%  rot %.0f  pan (%.0f,%.0f)  controls %s  bookmarks %v  t=%v\n",
		ls.Label, ls.CurrentPage, ls.TotalPages, turn, ls.Zoom, ls.Rotation, ls.Pan.X, ls.Pan.Y,
		controls, ls.Bookmarks, ls.Elapsed)
}
