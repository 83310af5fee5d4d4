// Package browser implements the image navigation state machine behind
// the folder-browsing panel.
//
// A State holds the images discovered in one bound directory, the index
// of the current image, and the single texture handle for that image.
// The host owns the State and drives it from the UI thread: Sync once
// per refresh, Prev/Next on button presses. There is no hidden storage;
// two widgets with distinct titles never share a State.
package browser

import (
	"github.com/triptychview/triptych/internal/logging"
	"github.com/triptychview/triptych/internal/texture"
)

// Scanner lists the image files in a directory. A missing directory
// yields an empty result, never an error.
type Scanner interface {
	ListImages(dir string) []string
}

// State is the persistent browsing state for one widget instance.
type State struct {
	title     string
	directory string
	images    []string
	index     int

	tex           texture.Handle
	width, height int // native dimensions, meaningful only while tex is held

	// loadFailed suppresses reload attempts for the current index until
	// the user navigates away or the directory changes. A failed decode
	// is not retried on every refresh.
	loadFailed bool

	scanner Scanner
	loader  texture.Loader
	log     *logging.Logger
}

// New creates an empty State identified by title. The title is only a
// label for logs; callers keep one State per widget identity.
func New(title string, scanner Scanner, loader texture.Loader, log *logging.Logger) *State {
	return &State{
		title:   title,
		scanner: scanner,
		loader:  loader,
		log:     log,
	}
}

// Title returns the widget identity label.
func (s *State) Title() string { return s.title }

// Sync binds the state to directory and ensures a texture is held for
// the current image when possible.
//
// A directory different from the bound one (string comparison, not a
// filesystem re-poll) triggers a re-scan: the image list is recomputed,
// the index resets to 0, and any held texture is released. Afterwards,
// if no texture is held, the collection is non-empty, and the last load
// for this index did not fail, the current image is decoded
// synchronously. A decode failure is logged and leaves the panel
// imageless; it is retried only after navigation or a directory change.
func (s *State) Sync(directory string) {
	if directory != s.directory {
		s.releaseTexture()
		s.directory = directory
		s.images = s.scanner.ListImages(directory)
		s.index = 0
		s.loadFailed = false
		s.log.Debug().
			Str("widget", s.title).
			Str("dir", directory).
			Int("images", len(s.images)).
			Msg("directory bound")
	}

	if s.tex != nil || len(s.images) == 0 || s.loadFailed {
		return
	}

	path := s.images[s.index]
	h, err := s.loader.Load(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("failed to load image")
		s.loadFailed = true
		return
	}
	s.tex = h
	s.width, s.height = h.Size()
}

// Prev steps to the previous image. At the first image it is a no-op:
// no release, no reload. An effective step releases the held texture so
// the next Sync loads the new current image.
func (s *State) Prev() {
	if len(s.images) == 0 || s.index == 0 {
		return
	}
	s.index--
	s.releaseTexture()
	s.loadFailed = false
}

// Next steps to the following image. At the last image it is a no-op.
func (s *State) Next() {
	if len(s.images) == 0 || s.index+1 >= len(s.images) {
		return
	}
	s.index++
	s.releaseTexture()
	s.loadFailed = false
}

// Texture returns the held handle, or nil when no image is loaded.
func (s *State) Texture() texture.Handle { return s.tex }

// Dimensions returns the native pixel size of the held texture. Only
// meaningful when Texture is non-nil.
func (s *State) Dimensions() (width, height int) { return s.width, s.height }

// ThumbnailSize returns the display size for the held texture at a
// fixed height, preserving the native aspect ratio. The zero value is
// returned when no texture is held, so no division by a zero height
// can occur.
func (s *State) ThumbnailSize(fixedHeight float32) (w, h float32) {
	if s.tex == nil {
		return 0, 0
	}
	return fixedHeight * float32(s.width) / float32(s.height), fixedHeight
}

// CurrentPath returns the path of the current image, or "" when the
// collection is empty.
func (s *State) CurrentPath() string {
	if len(s.images) == 0 {
		return ""
	}
	return s.images[s.index]
}

// Index returns the current position in the collection.
func (s *State) Index() int { return s.index }

// Len returns the number of images in the bound directory.
func (s *State) Len() int { return len(s.images) }

// Empty reports whether the bound directory yielded no images. This is
// a valid terminal state for the directory: the panel renders with no
// image and navigation stays inert.
func (s *State) Empty() bool { return len(s.images) == 0 }

// Release drops the held texture, if any. Called on directory change
// and on shutdown.
func (s *State) Release() { s.releaseTexture() }

func (s *State) releaseTexture() {
	if s.tex == nil {
		return
	}
	s.tex.Release()
	s.tex = nil
	s.width, s.height = 0, 0
}
