package content

import (
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/phanxgames/folio"
)

// ImageBook is a sequence of image pages collected from a filesystem with a
// doublestar pattern such as "scans/**/*.png". Pages are ordered by path and
// each directory starts a new chapter.
type ImageBook struct {
	paths    []string
	chapters []folio.Chapter
}

// NewImageBook globs fsys for pattern.
func NewImageBook(fsys fs.FS, pattern string) (*ImageBook, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %q: %w", pattern, ErrEmpty)
	}
	slices.Sort(matches)

	b := &ImageBook{paths: matches}
	lastDir := ""
	for i, p := range matches {
		dir := path.Dir(p)
		if i > 0 && dir == lastDir {
			continue
		}
		lastDir = dir
		b.chapters = append(b.chapters, folio.Chapter{
			Label:     fmt.Sprintf("Chapter %d", len(b.chapters)+1),
			Title:     dir,
			StartPage: i + 1,
		})
	}
	return b, nil
}

// PageCount returns the number of images.
func (b *ImageBook) PageCount() int { return len(b.paths) }

// Page returns page n (1-based); Ref is the image's path within the filesystem.
func (b *ImageBook) Page(n int) (folio.Payload, error) {
	if n < 1 || n > len(b.paths) {
		return folio.Payload{}, fmt.Errorf("page %d out of range [1, %d]", n, len(b.paths))
	}
	return folio.Payload{Kind: folio.PayloadImage, Ref: b.paths[n-1]}, nil
}

// Chapters returns one chapter per directory.
func (b *ImageBook) Chapters() []folio.Chapter { return b.chapters }
