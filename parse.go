package svgraster

import (
	"io"
	"os"

	"github.com/gogpu/svgraster/internal/xmlscan"
)

// Parse parses an in-memory SVG document into an Image. data is mutated
// in place by the tokenizer; pass a copy if the caller still needs the
// original bytes afterward. A document that yields no shapes is not
// treated as failure — an empty, validly-structured <svg> yields a
// non-nil Image with no shapes. Parse only returns nil for a nil/empty
// input buffer.
func Parse(data []byte, opts ...ParseOption) *Image {
	if len(data) == 0 {
		return nil
	}
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := newBuilder(o)
	xmlscan.Scan(data, b)
	return b.image
}

// ParseReader reads all of r and parses it as an SVG document.
func ParseReader(r io.Reader, opts ...ParseOption) *Image {
	data, err := io.ReadAll(r)
	if err != nil {
		Logger().Warn("svgraster: reading SVG input failed", "error", err)
		return nil
	}
	return Parse(data, opts...)
}

// ParseFile reads and parses the SVG document at path. Unlike Parse and
// ParseReader, ParseFile surfaces the underlying I/O error so callers
// can distinguish "file not found" from "malformed SVG".
func ParseFile(path string, opts ...ParseOption) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...), nil
}
