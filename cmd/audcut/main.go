// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ik5/audcut"
	"github.com/ik5/audcut/clip"
	"github.com/ik5/audcut/timefmt"
)

var (
	outputPath string
	formatName string
	cutFront   string
	cutBack    string
	cutMiddle  []string
	extract    []string
	targetRate int
	downmix    bool
	showInfo   bool
)

var rootCmd = &cobra.Command{
	Use:   "audcut INPUT -o OUTPUT",
	Short: "Cut audio files by removing sections from front, back, or middle",
	Long: `Audcut removes or extracts a contiguous time range from an audio file
and writes the remainder (or the extracted range) to a new file.

WAV, MP3, Ogg Vorbis and AIFF inputs are supported. Plain PCM WAV input
is cut bit-perfectly and always written back as WAV; other formats are
decoded to 16-bit PCM and written as WAV or AIFF.

Time format examples:
  5s          5 seconds
  15m         15 minutes
  500ms       500 milliseconds
  1:30        1 minute 30 seconds
  1:23:45     1 hour 23 minutes 45 seconds
  75.5        75.5 seconds

Usage examples:
  # Remove first 10 seconds
  audcut input.mp3 --cut-front 10s -o output.wav

  # Remove last 5 seconds
  audcut input.wav --cut-back 5s -o output.wav

  # Remove the section from 1:00 to 2:30
  audcut input.mp3 --cut-middle 1:00,2:30 -o output.wav

  # Keep only the section from 1:00 to 2:30
  audcut input.mp3 --extract 1:00,2:30 -o output.wav`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&outputPath, "output", "o", "", "output audio file (required)")
	flags.StringVar(&cutFront, "cut-front", "", "remove `DURATION` from the front")
	flags.StringVar(&cutBack, "cut-back", "", "remove `DURATION` from the back")
	flags.StringSliceVar(&cutMiddle, "cut-middle", nil, "remove the section between `START,END`")
	flags.StringSliceVar(&extract, "extract", nil, "keep only the section between `START,END`")
	flags.StringVar(&formatName, "format", "", "output format (wav, aiff); default: output extension")
	flags.IntVar(&targetRate, "rate", 0, "resample to `HZ` before cutting")
	flags.BoolVar(&downmix, "mono", false, "downmix to mono before cutting")
	flags.BoolVar(&showInfo, "info", false, "show audio file information")

	rootCmd.MarkFlagRequired("output")
	rootCmd.MarkFlagsOneRequired("cut-front", "cut-back", "cut-middle", "extract")
	rootCmd.MarkFlagsMutuallyExclusive("cut-front", "cut-back", "cut-middle", "extract")
}

// parseRange validates the two comma-separated boundaries of a
// --cut-middle or --extract flag.
func parseRange(flag string, vals []string) (start, end int, err error) {
	if len(vals) != 2 {
		return 0, 0, fmt.Errorf("--%s needs START,END", flag)
	}

	start, err = timefmt.Parse(vals[0])
	if err != nil {
		return 0, 0, err
	}
	end, err = timefmt.Parse(vals[1])
	if err != nil {
		return 0, 0, err
	}

	return start, end, nil
}

func run(cmd *cobra.Command, args []string) error {
	seg, err := audcut.Open(args[0], audcut.Options{
		Rate: targetRate,
		Mono: downmix,
	})
	if err != nil {
		return err
	}

	if showInfo {
		d := seg.Duration()
		fmt.Printf("Audio duration: %s (%d ms)\n", timefmt.Format(d), d)
	}

	var out clip.Segment

	switch {
	case cutFront != "":
		d, err := timefmt.Parse(cutFront)
		if err != nil {
			return err
		}
		if out, err = seg.CutFront(d); err != nil {
			return err
		}
		fmt.Printf("Cutting %s from front\n", timefmt.Format(d))

	case cutBack != "":
		d, err := timefmt.Parse(cutBack)
		if err != nil {
			return err
		}
		if out, err = seg.CutBack(d); err != nil {
			return err
		}
		fmt.Printf("Cutting %s from back\n", timefmt.Format(d))

	case len(cutMiddle) > 0:
		start, end, err := parseRange("cut-middle", cutMiddle)
		if err != nil {
			return err
		}
		if out, err = seg.CutMiddle(start, end); err != nil {
			return err
		}
		fmt.Printf("Cutting section from %s to %s\n", timefmt.Format(start), timefmt.Format(end))

	default:
		start, end, err := parseRange("extract", extract)
		if err != nil {
			return err
		}
		if out, err = seg.Extract(start, end); err != nil {
			return err
		}
		fmt.Printf("Extracting section from %s to %s\n", timefmt.Format(start), timefmt.Format(end))
	}

	// Output format: --format, else output extension, else input extension.
	format := formatName
	if format == "" && filepath.Ext(outputPath) == "" {
		format = filepath.Ext(args[0])
	}

	written, err := audcut.Save(out, outputPath, format)
	if err != nil {
		return err
	}
	fmt.Printf("Saved to: %s\n", written)

	d := out.Duration()
	fmt.Printf("Output duration: %s (%d ms)\n", timefmt.Format(d), d)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
