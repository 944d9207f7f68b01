// Package assets loads the text-art sprites used by the game.
// Sprites are plain text files grouped by category directory; the built-in
// set is embedded and a directory with the same layout can replace it.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/space-debris/internal/core"
)

//go:embed frames
var embedded embed.FS

// ErrMissingFrames is returned when a category has no usable frame.
var ErrMissingFrames = errors.New("assets: missing frames")

// Sprite categories, as directory names.
const (
	CategoryShip      = "ship"
	CategoryDebris    = "debris"
	CategoryExplosion = "explosion"
	gameOverFile      = "game_over.txt"
)

// Frame is one text-art sprite with its bounding box.
type Frame struct {
	Name string
	Text string
	Rows int
	Cols int
}

// NewFrame builds a frame from raw file contents.
func NewFrame(name, text string) Frame {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	rows, cols := core.FrameSize(text)
	return Frame{Name: name, Text: text, Rows: rows, Cols: cols}
}

// Pack holds every sprite the game needs.
type Pack struct {
	Ship      []Frame
	Debris    []Frame
	Explosion []Frame
	GameOver  Frame
}

// Load reads sprites from dir, or the embedded set when dir is empty.
func Load(dir string) (*Pack, error) {
	if dir == "" {
		return LoadEmbedded()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadEmbedded reads the built-in sprites.
func LoadEmbedded() (*Pack, error) {
	sub, err := fs.Sub(embedded, "frames")
	if err != nil {
		return nil, fmt.Errorf("assets: embedded frames: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS reads sprites from a file system laid out as
// ship/*.txt, debris/*.txt, explosion/*.txt and game_over.txt.
func LoadFS(fsys fs.FS) (*Pack, error) {
	var (
		p   Pack
		err error
	)

	if p.Ship, err = Category(fsys, CategoryShip); err != nil {
		return nil, err
	}
	if p.Debris, err = Category(fsys, CategoryDebris); err != nil {
		return nil, err
	}
	if p.Explosion, err = Category(fsys, CategoryExplosion); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, gameOverFile)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", gameOverFile, err)
	}
	p.GameOver = NewFrame(gameOverFile, string(data))
	if p.GameOver.Text == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrMissingFrames, gameOverFile)
	}

	return &p, nil
}

// Category returns the frames of one category sorted by file name, which
// fixes the animation order.
func Category(fsys fs.FS, category string) ([]Frame, error) {
	entries, err := fs.ReadDir(fsys, category)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot list %s: %w", category, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	frames := make([]Frame, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(category, name))
		if err != nil {
			return nil, fmt.Errorf("assets: cannot read %s/%s: %w", category, name, err)
		}
		f := NewFrame(name, string(data))
		if f.Text == "" {
			continue
		}
		frames = append(frames, f)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: category %q", ErrMissingFrames, category)
	}
	return frames, nil
}

// Texts returns the text of each frame.
func Texts(frames []Frame) []string {
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = f.Text
	}
	return out
}
