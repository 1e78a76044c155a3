package anim

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrLoad marks a failure of the whole asset scan, as opposed to a single
// category that could not be read.
var ErrLoad = errors.New("animation load failed")

// Placeholder frame used when no assets could be loaded at all
const (
	PlaceholderImage    = "placeholder.png"
	PlaceholderDuration = 2000 * time.Millisecond
)

// loadOrder lists the categories that have an asset directory, in load order.
// Sad comes after Idle so it can fall back to it.
var loadOrder = []Category{Idle, Happy, Sad, Eating, Petted}

// Loader discovers frame sequences in a directory tree laid out as
// <base>/<Category>/<name>_<index>_<durationMs>.<ext>
type Loader struct {
	// Extensions accepted as frames, compared without case. Defaults to .png.
	Extensions []string
	// Once lists categories built as non-looping sequences
	Once map[Category]bool
}

// NewLoader creates a loader that accepts .png frames
func NewLoader() *Loader {
	return &Loader{Extensions: []string{".png"}}
}

// LoadAll scans basePath on disk. A missing base directory is not an error;
// it simply yields the placeholder set.
func (l *Loader) LoadAll(basePath string) (Set, error) {
	info, err := os.Stat(basePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Animation directory %s does not exist, using placeholder", basePath)
		return PlaceholderSet(), nil
	case err != nil:
		return nil, fmt.Errorf("stat %s: %w: %w", basePath, ErrLoad, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%s is not a directory: %w", basePath, ErrLoad)
	}
	return l.LoadFS(os.DirFS(basePath), basePath), nil
}

// LoadFS scans fsys. Frame image paths are built under root.
func (l *Loader) LoadFS(fsys fs.FS, root string) Set {
	set := make(Set)

	for _, c := range loadOrder {
		seq := l.loadDir(fsys, root, c)
		if seq != nil {
			set[c] = seq
			continue
		}
		if c == Sad {
			if idle, ok := set[Idle]; ok {
				log.Printf("No Sad frames found, reusing Idle")
				set[Sad] = idle
			}
		}
	}

	if len(set) == 0 {
		log.Printf("No animation frames found under %s, using placeholder", root)
		return PlaceholderSet()
	}
	return set
}

func (l *Loader) loadDir(fsys fs.FS, root string, c Category) *Sequence {
	dir := c.String()
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Error reading animation directory %s: %v", dir, err)
		}
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !l.accepts(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil
	}
	// Plain string order: frame indices must be zero-padded to sort correctly
	sort.Strings(names)

	seq := NewSequence(c, strings.ToLower(dir)).SetLooping(!l.Once[c])
	for _, name := range names {
		seq.AddFrame(framePath(root, dir, name), DurationFromName(name))
	}
	if !seq.Valid() {
		return nil
	}

	log.Printf("Loaded %d frames for %s (%v total)", seq.FrameCount(), c, seq.TotalDuration())
	return seq
}

func (l *Loader) accepts(name string) bool {
	exts := l.Extensions
	if len(exts) == 0 {
		exts = []string{".png"}
	}
	ext := filepath.Ext(name)
	for _, want := range exts {
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

func framePath(root, dir, name string) string {
	if root == "" {
		return filepath.Join(dir, name)
	}
	return filepath.Join(root, dir, name)
}

// DurationFromName reads the frame duration from a file name of the form
// name_index_durationMs.ext. Anything else gets DefaultFrameDuration.
func DurationFromName(name string) time.Duration {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(stem, "_")
	if len(parts) < 3 {
		return DefaultFrameDuration
	}

	ms, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || ms <= 0 {
		return DefaultFrameDuration
	}
	return time.Duration(ms) * time.Millisecond
}
