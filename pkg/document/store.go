package document

import (
	"context"
	"os"

	"github.com/clbanning/mxj/v2"
	"github.com/pkg/errors"
)

func init() {
	// Match the xmltodict-style conventions the engine navigates by.
	mxj.SetAttrPrefix("@")
}

// Store supplies the parsed document for one import run.
type Store interface {
	Load(ctx context.Context) (*Document, error)
}

// FileStore loads and parses an XML document from the local filesystem.
type FileStore struct {
	path string
}

// NewFileStore creates a store reading from the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements Store.
func (s *FileStore) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", s.path)
	}
	return Parse(data)
}

// Parse decodes raw XML into a Document.
func Parse(data []byte) (*Document, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse XML document")
	}
	return New(map[string]interface{}(m)), nil
}
