package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/youpy/go-wav"

	"github.com/phanxgames/folio"
)

var soundCmd = &cobra.Command{
	Use:   "sound",
	Short: "Render the page-turn sound to a WAV file",
	Long:  `Synthesizes the three-layer paper rustle played on every page turn and writes it as 16-bit mono PCM.`,
	RunE:  runSound,
}

func init() {
	soundCmd.Flags().StringP("out", "o", "page-turn.wav", "output WAV path")
	soundCmd.Flags().Int("rate", 0, "sample rate in Hz (defaults to the config's sample_rate)")
	soundCmd.Flags().Float64("gain", 1, "linear gain applied before quantizing")
	rootCmd.AddCommand(soundCmd)
}

func runSound(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rate, _ := cmd.Flags().GetInt("rate")
	if rate <= 0 {
		rate = cfg.SampleRate
	}
	gain, _ := cmd.Flags().GetFloat64("gain")
	out, _ := cmd.Flags().GetString("out")

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	n, err := writePageTurnWAV(f, rate, gain)
	if err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d samples at %d Hz\n", n, rate)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// writePageTurnWAV renders the page-turn sound as 16-bit mono PCM and returns
// the number of samples written.
func writePageTurnWAV(w io.Writer, sampleRate int, gain float64) (int, error) {
	buf := folio.RenderPageTurn(sampleRate)
	samples := make([]wav.Sample, len(buf))
	for i, s := range buf {
		v := math.Max(-1, math.Min(1, float64(s)*gain))
		samples[i].Values[0] = int(math.Round(v * math.MaxInt16))
	}
	ww := wav.NewWriter(w, uint32(len(samples)), 1, uint32(sampleRate), 16)
	if err := ww.WriteSamples(samples); err != nil {
		return 0, err
	}
	return len(samples), nil
}
