package source

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/minio/highwayhash"
	"github.com/viant/afs"
)

// two trailing NUL bytes, as required by the scanner.
const trailingNULs = "\x00\x00"

// hashKey is a fixed 32-byte key for the content fingerprint, the same
// scheme viant/linager's graph.Hash uses for its own content hashes.
var hashKey = []byte("forge-source-content-hash-key!!!")

// Mode distinguishes the two input modes a Source can be opened in.
type Mode int

const (
	// ModeBuffer is a random-access, in-memory source. Its bytes are
	// guaranteed to carry two trailing NULs.
	ModeBuffer Mode = iota
	// ModeFile is a source read from the filesystem (or any
	// afs-backed storage.Storager, e.g. an in-memory or S3-backed one
	// in tests). OpenFile reads the whole file when it opens it; file
	// sources are not read on demand.
	ModeFile
)

// Source owns a byte stream and its logical path. Once
// constructed its bytes never change; Reader cursors over a
// Source share its buffer without copying.
type Source struct {
	path string
	mode Mode
	// bytes always carries the two trailing NULs the scanner requires,
	// regardless of mode: file sources are read eagerly and the NULs
	// appended once, buffer sources have them appended at construction.
	bytes []byte
}

// NewBuffer constructs an in-memory Source from text. If path is empty
// a synthetic path is assigned (a forge-specific scheme, mirroring how
// playbymail-ottomap assigns a uuid-based identity to anonymous
// records) so every Source still has a unique, stable key for
// Context registration and diagnostic rendering.
func NewBuffer(path string, text string) *Source {
	if path == "" {
		path = "buffer://" + uuid.NewString()
	}
	return &Source{
		path:  path,
		mode:  ModeBuffer,
		bytes: append([]byte(text), trailingNULs...),
	}
}

// OpenFile reads path eagerly through fs (an afs.Service; pass
// afs.New() for the real filesystem) and returns a file-mode Source.
func OpenFile(ctx context.Context, fs afs.Service, path string) (*Source, error) {
	data, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("forge/source: read %q: %w", path, err)
	}

	return &Source{
		path:  path,
		mode:  ModeFile,
		bytes: append(data, trailingNULs...),
	}, nil
}

// Path returns the source's logical path.
func (s *Source) Path() string { return s.path }

// Mode returns the input mode the Source was opened in.
func (s *Source) Mode() Mode { return s.mode }

// Bytes returns the full NUL-terminated buffer, including the two
// trailing NULs. Callers must not mutate the returned slice.
func (s *Source) Bytes() []byte { return s.bytes }

// Text returns the source text without the trailing NULs.
func (s *Source) Text() string {
	if len(s.bytes) < 2 {
		return ""
	}
	return string(s.bytes[:len(s.bytes)-2])
}

// ContentHash returns a fingerprint of the source's text; nothing else
// in this module calls it. Grounded on viant/linager's
// inspector/graph.Hash, same highwayhash construction.
func (s *Source) ContentHash() (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write(s.bytes); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
