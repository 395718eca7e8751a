// Package dataset produces the record batches the kdknn core consumes and
// offers the optional normalization passes applied before an index is built.
//
// Sources:
//   - ReadCSV   — delimited text from any io.Reader
//   - LoadFile  — a memory-mapped file, transparently decompressed when the
//     name ends in .gz, .zst or .lz4
//   - ReadSQL   — rows of a database/sql query (OpenSQLite opens a pure-Go
//     SQLite database)
//
// Row layout (default, matching the classic Iris.csv):
//
//	Id,SepalLengthCm,SepalWidthCm,PetalLengthCm,PetalWidthCm,Species
//	1,5.1,3.5,1.4,0.2,Iris-setosa
//
// The header line and the leading id column are skipped; the next dim fields
// are features and the remainder of the line is the label.
//
// Every malformed row surfaces as a *FormatError that matches ErrDataFormat
// under errors.Is. The core packages never see these errors: a loader either
// produces records or fails.
//
// Normalization:
//   - MinMax  — rescale each feature to [0, 1]; constant features become 0
//   - ZScore  — subtract the mean and divide by the sample standard deviation;
//     constant features become 0
package dataset
