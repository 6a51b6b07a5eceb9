package pixpaint

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const execScript = `{"type":"size","size":0}
{"type":"press","x":0,"y":0}
{"type":"drag","x":7,"y":0}
{"type":"release"}
{"type":"tool","tool":"bucket"}
{"type":"color","color":"#ff0000"}
{"type":"press","x":3,"y":4}
`

func writeScript(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "script.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(execScript), 0644))
	return path
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestExecute_BlankCanvas(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")
	frames := filepath.Join(dir, "frames")
	pdf := filepath.Join(dir, "out.pdf")

	op := &Ops{
		Dst:        out,
		Script:     writeScript(t, dir),
		PipeName:   "-",
		Frames:     frames,
		PDF:        pdf,
		Width:      8,
		Height:     6,
		Background: white,
		Scale:      1,
	}

	var reported []string
	err := op.Execute(func(path string, stats ReplayStats, err error) {
		assert.NoError(t, err)
		assert.Equal(t, ReplayStats{Applied: 7, Commits: 2}, stats)
		reported = append(reported, path)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{out}, reported)

	img := readPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
	assert.Equal(t, black, toNRGBA(img.At(5, 0)))
	assert.Equal(t, red, toNRGBA(img.At(3, 4)))
	assert.Equal(t, red, toNRGBA(img.At(7, 5)))

	entries, err := os.ReadDir(frames)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"frame-0001.png", "frame-0002.png"}, names)

	// the first frame holds only the stroke
	first := readPNG(t, filepath.Join(frames, "frame-0001.png"))
	assert.Equal(t, white, toNRGBA(first.At(3, 4)))

	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestExecute_Directory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.MkdirAll(src, 0755))

	for _, name := range []string{"a.png", "b.png"} {
		buf := NewBuffer(8, 6, white)
		f, err := os.Create(filepath.Join(src, name))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, buf.Image()))
		require.NoError(t, f.Close())
	}
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("skip"), 0644))

	op := &Ops{
		Src:        src,
		Dst:        dst,
		Script:     writeScript(t, dir),
		PipeName:   "-",
		Frames:     filepath.Join(dir, "frames"),
		PDF:        filepath.Join(dir, "pdf"),
		Background: white,
		Scale:      1,
		Workers:    2,
	}

	var (
		mu       sync.Mutex
		reported []string
	)
	err := op.Execute(func(path string, stats ReplayStats, err error) {
		mu.Lock()
		defer mu.Unlock()
		assert.NoError(t, err)
		reported = append(reported, filepath.Base(path))
	})
	require.NoError(t, err)

	sort.Strings(reported)
	assert.Equal(t, []string{"a.png", "b.png"}, reported)

	for _, name := range []string{"a", "b"} {
		img := readPNG(t, filepath.Join(dst, name+".png"))
		assert.Equal(t, red, toNRGBA(img.At(7, 5)))
		assert.FileExists(t, filepath.Join(dir, "frames", name, "frame-0002.png"))
		assert.FileExists(t, filepath.Join(dir, "pdf", name+".pdf"))
	}
	assert.NoFileExists(t, filepath.Join(dst, "notes.txt"))
}

func TestExecute_Errors(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir)

	op := &Ops{Src: "-", Script: "-", PipeName: "-", Dst: filepath.Join(dir, "out.png")}
	assert.Error(t, op.Execute(nil))

	op = &Ops{PipeName: "-", Dst: filepath.Join(dir, "out.png"), Width: 4, Height: 4}
	assert.EqualError(t, op.Execute(nil), "no event script provided")

	op = &Ops{PipeName: "-", Script: script, Dst: filepath.Join(dir, "out.tiff"), Width: 4, Height: 4}
	assert.Error(t, op.Execute(nil))

	op = &Ops{PipeName: "-", Script: script, Dst: filepath.Join(dir, "out.png")}
	assert.Error(t, op.Execute(nil))
	assert.NoFileExists(t, filepath.Join(dir, "out.png"))

	op = &Ops{PipeName: "-", Script: script, Src: filepath.Join(dir, "missing.png"), Dst: filepath.Join(dir, "out.png")}
	assert.Error(t, op.Execute(nil))
}

func TestExecute_DirectoryToStdout(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(src, 0755))
	script := writeScript(t, dir)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	op := &Ops{Src: src, Dst: "-", PipeName: "-", Script: script}
	assert.EqualError(t, op.Execute(nil), "a directory source requires a destination directory")
	assert.NoDirExists(t, filepath.Join(dir, "-"))
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
