// Package loader handles code document loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/retroenv/arcodes/internal/options"
)

// maxDocumentSize limits the size of a code document that is read into memory.
const maxDocumentSize = 16 << 20

// Loader handles loading code documents from disk.
type Loader struct{}

// New creates a new document loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the code document of the input file option.
func (l *Loader) Load(opts options.Program) (string, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return "", fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads a code document from the reader.
// A leading UTF-8 byte order mark is removed.
func (l *Loader) LoadFromReader(reader io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(reader, maxDocumentSize+1))
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	if len(data) > maxDocumentSize {
		return "", fmt.Errorf("document exceeds maximum size of %d bytes", maxDocumentSize)
	}
	if !utf8.Valid(data) {
		return "", errors.New("document is not valid UTF-8")
	}

	text := string(data)
	if r, size := utf8.DecodeRuneInString(text); r == '\uFEFF' {
		text = text[size:]
	}
	return text, nil
}
