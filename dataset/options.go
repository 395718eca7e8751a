package dataset

// Compression selects how LoadFile decodes a file.
type Compression int

const (
	// Auto picks a decoder from the file extension.
	Auto Compression = iota
	// None reads the file as plain text.
	None
	// Gzip decodes RFC 1952 streams (.gz).
	Gzip
	// Zstd decodes Zstandard streams (.zst).
	Zstd
	// LZ4 decodes LZ4 frame streams (.lz4).
	LZ4
)

// Options configures the readers.
//
// Separator   – field delimiter; default ','.
// Header      – skip the first line; default true.
// IDColumn    – skip the first field of every row; default true.
// Compression – LoadFile decoding; default Auto.
type Options struct {
	Separator   rune
	Header      bool
	IDColumn    bool
	Compression Compression
}

// Option represents a functional option for the readers.
type Option func(*Options)

// DefaultOptions returns the Iris.csv layout: comma separated, header line,
// leading id column, compression detected from the extension.
func DefaultOptions() Options {
	return Options{
		Separator:   ',',
		Header:      true,
		IDColumn:    true,
		Compression: Auto,
	}
}

// WithSeparator sets the field delimiter. Panics on '"', '\r', '\n' or the
// Unicode replacement character, which encoding/csv rejects.
func WithSeparator(r rune) Option {
	if r == '"' || r == '\r' || r == '\n' || r == 0xFFFD || r == 0 {
		panic("dataset: WithSeparator invalid rune")
	}
	return func(o *Options) {
		o.Separator = r
	}
}

// WithHeader toggles skipping the first line.
func WithHeader(skip bool) Option {
	return func(o *Options) {
		o.Header = skip
	}
}

// WithIDColumn toggles skipping the first field of every row.
func WithIDColumn(skip bool) Option {
	return func(o *Options) {
		o.IDColumn = skip
	}
}

// WithCompression forces a decoder in LoadFile.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
