// Command recognise runs a species recogniser over WAV files and
// prints the detected intervals.
//
// Usage:
//
//	recognise -filter <file> [flags] file.wav [file.wav ...]
//
// Examples:
//
//	recognise -filter kiwi.txt morning.wav
//	recognise -filter kiwi.txt -threshold 0.7 -quiet *.wav
//	recognise -filter kiwi.txt -frame 0.5 survey.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-detect/detect"
	"github.com/cwbudde/algo-detect/internal/wavio"
	"github.com/cwbudde/algo-detect/recogniser"
)

func main() {
	var (
		filterPath = flag.String("filter", "", "recogniser filter file (required)")
		threshold  = flag.Float64("threshold", 0.5, "decision threshold on buffer confidence")
		frameLen   = flag.Float64("frame", 0, "override analysis frame length in seconds")
		quiet      = flag.Bool("quiet", false, "print only the per-file confidence line")
	)

	flag.Parse()

	if *filterPath == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: recognise -filter <file> [flags] file.wav ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	data, err := os.ReadFile(*filterPath)
	if err != nil {
		fatalf("reading filter: %v", err)
	}

	spec, err := recogniser.Parse(data)
	if err != nil {
		fatalf("loading filter: %v", err)
	}

	var opts []detect.Option
	if *frameLen > 0 {
		opts = append(opts, detect.WithFrameLength(*frameLen))
	}

	rec, err := detect.New(spec, opts...)
	if err != nil {
		fatalf("building recogniser: %v", err)
	}

	exitCode := 0

	for _, path := range flag.Args() {
		if err := runFile(rec, spec, path, *threshold, *quiet); err != nil {
			fmt.Fprintf(os.Stderr, "recognise: %s: %v\n", path, err)
			exitCode = 1
		}
	}

	os.Exit(exitCode)
}

func runFile(rec *detect.Recogniser, spec *recogniser.Spec, path string, threshold float64, quiet bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	clip, err := wavio.Decode(data)
	if err != nil {
		return err
	}

	buf, err := detect.FromPCM16(clip.Samples, float64(clip.SampleRate), clip.Channels)
	if err != nil {
		return err
	}

	res, err := rec.Analyse(buf)
	if err != nil {
		return err
	}

	verdict := "absent"
	if res.Detected(threshold) {
		verdict = "present"
	}

	fmt.Printf("%s\t%s\t%s\tconfidence=%.3f\t%s\n",
		path, spec.Species, verdict, res.Confidence, plural(len(res.Intervals), "interval"))

	if quiet || len(res.Intervals) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  start\tend\tconfidence\tcall type\tband")

	for _, iv := range res.Intervals {
		fmt.Fprintf(w, "  %.2fs\t%.2fs\t%.3f\t%s\t%.0f-%.0f Hz\n",
			iv.Start, iv.End, iv.Confidence, iv.CallType, iv.FreqLow, iv.FreqHigh)
	}

	return w.Flush()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "recognise: "+format+"\n", args...)
	os.Exit(1)
}
