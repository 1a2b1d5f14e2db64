package storage

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when the requested object does not exist.
	ErrNotFound = errors.New("Not Found")
)

// Storage is implemented by the backends capable of reading and writing
// documents by key.
type Storage interface {
	Writer
	Reader
	Remover
	Searcher
	Lister
	Clearer
}

// Writer writes a document under a key.
type Writer interface {
	Write(ctx context.Context, key string, body []byte, options *Options) error
}

// Reader reads the document stored under a key.
type Reader interface {
	Read(ctx context.Context, key string) ([]byte, error)
}

// Remover removes the document stored under a key.
type Remover interface {
	Remove(ctx context.Context, key string) error
}

// Searcher returns the documents matching a query.
type Searcher interface {
	Search(ctx context.Context, query map[string]string) ([][]byte, error)
}

// Lister returns the keys, without the documents, under a path.
type Lister interface {
	List(ctx context.Context, path string) ([]string, error)
}

// Clearer removes all documents matching a query.
type Clearer interface {
	Clear(ctx context.Context, query map[string]string) error
}

// Options alter the behavior of a write.
type Options struct {
	// TTL is the number of seconds before the document expires, on backends
	// that support expiry.
	TTL int64

	// Mode is the file mode applied to documents on the filesystem backend.
	Mode os.FileMode

	// DirMode is the file mode applied to directories created on the
	// filesystem backend.
	DirMode os.FileMode
}

// NewOptions returns an Options with the defaults applied.
func NewOptions() Options {
	return Options{
		Mode:    0644,
		DirMode: 0755,
	}
}
