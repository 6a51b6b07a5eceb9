package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/esimov/pixpaint"
	"github.com/esimov/pixpaint/utils"
)

const HelpBanner = `
┌─┐┬─┐ ┬┌─┐┌─┐┬┌┐┌┌┬┐
├─┘│┌┴┬┘├─┘├─┤││││ │
┴  ┴┴ └─┴  ┴ ┴┴┘└┘ ┴

Raster painting script player.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	source      = flag.String("in", "", "Source image, directory or URL (empty for a blank canvas)")
	destination = flag.String("out", pipeName, "Destination image or directory")
	script      = flag.String("script", "", "Event script (JSON lines)")
	frames      = flag.String("frames", "", "Directory receiving a snapshot after each completed operation")
	pdfOut      = flag.String("pdf", "", "Export the final canvas as PDF (a directory for directory sources)")
	width       = flag.Int("width", 640, "Blank canvas width")
	height      = flag.Int("height", 480, "Blank canvas height")
	background  = flag.String("bg", "#ffffff", "Canvas background color")
	scale       = flag.Float64("scale", 1.0, "Device units per canvas pixel")
	workers     = flag.Int("conc", 0, "Number of files to process concurrently")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *script == "" {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide an event script!", utils.ErrorMessage))
	}

	if *verbose {
		pixpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	bg, err := pixpaint.ParseHex(*background)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid background color: %v", utils.ErrorMessage), err)
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ PIXPAINT", utils.StatusMessage),
		utils.DecorateText("⇢ replaying the event script...", utils.DefaultMessage),
	)

	op := &pixpaint.Ops{
		Src:        *source,
		Dst:        *destination,
		Script:     *script,
		PipeName:   pipeName,
		Frames:     *frames,
		PDF:        *pdfOut,
		Width:      *width,
		Height:     *height,
		Background: bg,
		Scale:      *scale,
		Workers:    *workers,
	}
	// The spinner would garble the verbose log and the piped output.
	if !*verbose && *destination != pipeName {
		op.Spinner = utils.NewSpinner(spinnerText, time.Millisecond*80, true)
	}

	// Capture CTRL-C signal and restore back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		if op.Spinner != nil {
			op.Spinner.RestoreCursor()
		}
		os.Exit(1)
	}()

	now := time.Now()
	if err := op.Execute(printStatus); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError replaying the script: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// printStatus displays the relevant information about a processed image.
func printStatus(fname string, stats pixpaint.ReplayStats, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%s %s\n",
			utils.DecorateText(filepath.Base(fname), utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		return
	}
	if fname == pipeName {
		return
	}
	fmt.Fprintf(os.Stderr, "\nThe canvas has been saved as: %s %s(%d events, %d skipped, %d operations)\n",
		utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		utils.DefaultColor,
		stats.Applied, stats.Skipped, stats.Commits,
	)
}
