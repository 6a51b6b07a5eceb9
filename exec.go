package pixpaint

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/esimov/pixpaint/export"
	"github.com/esimov/pixpaint/imop"
	"github.com/esimov/pixpaint/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Ops describes a script replay run.
type Ops struct {
	// Src is the source image: a file, a directory, an URL or PipeName for stdin.
	// An empty Src starts from a blank Width x Height canvas.
	Src string
	// Dst is the destination file, or directory when Src is a directory.
	Dst string
	// Script is the event script path, or PipeName for stdin.
	Script   string
	PipeName string
	// Frames, if set, is the directory receiving a PNG snapshot after every commit.
	Frames string
	// PDF, if set, is the path of a PDF copy of the final canvas.
	// For a directory source it is the directory receiving one PDF per image.
	PDF string

	Width, Height int
	Background    color.NRGBA
	Scale         float64
	Workers       int

	// Spinner, if set, is shown while the scripts are replayed.
	Spinner *utils.Spinner
}

// result holds the outcome of a single replay.
type result struct {
	path  string
	stats ReplayStats
	err   error
}

// Report is called for every processed image.
type Report func(path string, stats ReplayStats, err error)

// Execute replays the script over the source image(s) and writes the result.
// A directory source is processed concurrently, each image in its own Session.
func (op *Ops) Execute(report Report) error {
	if op.Src == op.PipeName && op.Script == op.PipeName {
		return errors.New("the source image and the script cannot both be read from stdin")
	}

	events, err := op.readScript()
	if err != nil {
		return err
	}

	if op.Spinner != nil {
		op.Spinner.Start()
		defer op.Spinner.Stop()
	}

	src := op.Src
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return fmt.Errorf("failed to load the source image: %w", err)
		}
		defer os.Remove(f.Name())
		defer f.Close()
		src = f.Name()
	}

	if src != "" && src != op.PipeName {
		fs, err := os.Stat(src)
		if err != nil {
			return fmt.Errorf("failed to load the source image: %w", err)
		}
		if fs.IsDir() {
			return op.batch(src, events, report)
		}
	}

	if !IsSupportedFile(op.Dst) && op.Dst != op.PipeName {
		return fmt.Errorf("%v file type not supported", filepath.Ext(op.Dst))
	}
	stats, err := op.process(src, op.Dst, op.Frames, op.PDF, events)
	if report != nil {
		report(op.Dst, stats, err)
	}
	return err
}

// batch replays the script over every supported image found in dir.
func (op *Ops) batch(dir string, events []ScriptEvent, report Report) error {
	if op.Dst == "" || op.Dst == op.PipeName {
		return errors.New("a directory source requires a destination directory")
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}
	if op.PDF != "" {
		if err := os.MkdirAll(op.PDF, 0755); err != nil {
			return fmt.Errorf("unable to create the pdf directory: %w", err)
		}
	}

	workers := op.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	paths, errc := walkDir(done, dir)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(events, ch, done, paths)
		}()
	}

	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var firstErr error
	for res := range ch {
		if res.err != nil && firstErr == nil {
			firstErr = res.err
		}
		if report != nil {
			report(res.path, res.stats, res.err)
		}
	}

	if err := <-errc; err != nil {
		return err
	}
	return firstErr
}

// consumer reads the path names from the paths channel and replays the script on each of them.
func (op *Ops) consumer(
	events []ScriptEvent,
	res chan<- result,
	done <-chan struct{},
	paths <-chan string,
) {
	for src := range paths {
		dst := filepath.Join(op.Dst, filepath.Base(src))
		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		var frames, pdf string
		if op.Frames != "" {
			frames = filepath.Join(op.Frames, name)
		}
		if op.PDF != "" {
			pdf = filepath.Join(op.PDF, name+".pdf")
		}
		stats, err := op.process(src, dst, frames, pdf, events)

		select {
		case <-done:
			return
		case res <- result{path: src, stats: stats, err: err}:
		}
	}
}

// process replays the events over a single image.
func (op *Ops) process(in, out, frames, pdf string, events []ScriptEvent) (stats ReplayStats, err error) {
	buf, err := op.load(in)
	if err != nil {
		return stats, err
	}

	s := NewSession(buf, op.Background)
	s.Transform.Scale = op.Scale
	if frames != "" {
		if err := os.MkdirAll(frames, 0755); err != nil {
			return stats, fmt.Errorf("unable to create the frames directory: %w", err)
		}
		s.OnCommit = func(c Commit) {
			if err != nil {
				return
			}
			err = writeFrame(filepath.Join(frames, fmt.Sprintf("frame-%04d.png", c.Seq)), buf, op.Background)
		}
	}

	stats = s.Replay(events)
	if err != nil {
		return stats, err
	}

	if err := op.save(out, buf); err != nil {
		return stats, err
	}

	if pdf != "" {
		f, err := os.Create(pdf)
		if err != nil {
			return stats, fmt.Errorf("unable to create the pdf file: %w", err)
		}
		defer f.Close()

		if err := export.PDF(f, imop.Flatten(buf.Snapshot(), op.Background), filepath.Base(out)); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// load opens the source image or creates a blank canvas when in is empty.
func (op *Ops) load(in string) (*Buffer, error) {
	if in == "" {
		if op.Width <= 0 || op.Height <= 0 {
			return nil, fmt.Errorf("invalid canvas size %dx%d", op.Width, op.Height)
		}
		return NewBuffer(op.Width, op.Height, op.Background), nil
	}

	var r io.Reader
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		r = os.Stdin
	} else {
		f, err := os.Open(in)
		if err != nil {
			return nil, fmt.Errorf("unable to open the source file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return DecodeImage(r)
}

// save encodes the buffer to the destination file or to stdout.
func (op *Ops) save(out string, buf *Buffer) error {
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return EncodeImage(os.Stdout, buf.Image(), ".png", op.Background)
	}

	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := EncodeImage(f, buf.Image(), filepath.Ext(out), op.Background); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	return f.Close()
}

// readScript loads the event script from a file or from stdin.
func (op *Ops) readScript() ([]ScriptEvent, error) {
	if op.Script == "" {
		return nil, errors.New("no event script provided")
	}
	if op.Script == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return ParseScript(os.Stdin)
	}

	f, err := os.Open(op.Script)
	if err != nil {
		return nil, fmt.Errorf("unable to open the script file: %w", err)
	}
	defer f.Close()
	return ParseScript(f)
}

func writeFrame(path string, buf *Buffer, bg color.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create frame: %w", err)
	}
	defer f.Close()
	return EncodeImage(f, buf.Snapshot(), ".png", bg)
}

// walkDir starts a new goroutine to walk the specified directory tree
// and sends the path of each supported image file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(done <-chan struct{}, src string) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() || !IsSupportedFile(f.Name()) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}
