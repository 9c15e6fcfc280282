package tilestack

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ErrResourceNotFound is returned when a requested resource does not exist.
var ErrResourceNotFound = errors.New("tilestack: resource not found")

// Labels maps a resource identity to a diagnostic label, such as the file an
// image was loaded from. Nothing in the scene logic reads it.
//
// The zero value is ready to use.
type Labels[K comparable] struct {
	m map[K]string
}

// Set records label for key, replacing any previous label.
func (l *Labels[K]) Set(key K, label string) {
	if l.m == nil {
		l.m = make(map[K]string)
	}
	l.m[key] = label
}

// Get returns the label for key.
func (l *Labels[K]) Get(key K) (string, bool) {
	label, ok := l.m[key]
	return label, ok
}

// Delete forgets key.
func (l *Labels[K]) Delete(key K) {
	delete(l.m, key)
}

// Len returns the number of labelled keys.
func (l *Labels[K]) Len() int {
	return len(l.m)
}

// ImageLoader loads images from a file system and labels each one with the
// path it came from.
type ImageLoader struct {
	fsys   fs.FS
	Labels Labels[*ebiten.Image]
}

// NewImageLoader creates a loader reading from fsys, e.g. os.DirFS("resources")
// or an embed.FS.
func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{fsys: fsys}
}

// Load decodes the image at name and records name as its label. A missing
// file yields an error wrapping ErrResourceNotFound.
func (l *ImageLoader) Load(name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load image %s: %w", name, ErrResourceNotFound)
		}
		return nil, fmt.Errorf("load image %s: %w", name, err)
	}
	l.Labels.Set(img, name)
	return img, nil
}

// LoadOrPlaceholder is Load, but a failure returns a size x size magenta
// placeholder (labelled with name) and logs a warning instead of failing.
func (l *ImageLoader) LoadOrPlaceholder(name string, size int) *ebiten.Image {
	img, err := l.Load(name)
	if err == nil {
		return img
	}
	log.Printf("%v, using magenta placeholder", err)
	if size < 1 {
		size = 1
	}
	img = ebiten.NewImage(size, size)
	img.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	l.Labels.Set(img, name)
	return img
}

// Label returns the path img was loaded from.
func (l *ImageLoader) Label(img *ebiten.Image) (string, bool) {
	return l.Labels.Get(img)
}
