package dataset

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-mmap/mmap"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/kdknn/record"
)

// LoadFile memory-maps path and parses it with ReadCSV. With the default
// Auto compression the decoder is chosen by extension: .gz, .zst (or
// .zstd) and .lz4; anything else is read as plain text.
func LoadFile(path string, dim int, opts ...Option) ([]record.Record[float64, string], error) {
	o := resolve(opts)

	f, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	c := o.Compression
	if c == Auto {
		c = DetectCompression(path)
	}
	r, closeFn, err := decoder(io.NewSectionReader(f, 0, int64(f.Len())), c)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	defer closeFn()

	rs, err := ReadCSV(r, dim, opts...)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return rs, nil
}

// DetectCompression maps a file name to its Compression by extension.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// decoder wraps r for c. The returned close func is always non-nil.
func decoder(r io.Reader, c Compression) (io.Reader, func(), error) {
	noop := func() {}
	switch c {
	case None:
		return r, noop, nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return zr, zr.Close, nil
	case LZ4:
		return lz4.NewReader(r), noop, nil
	default:
		return nil, noop, fmt.Errorf("compression %d: %w", c, ErrUnsupportedCompression)
	}
}
