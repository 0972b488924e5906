// Package spheres reads and writes sphere-set files.
//
// The format is plain text with one sphere per line, given as four
// whitespace-separated numbers:
//
//	x y z r
//
// Blank lines and lines starting with '#' are ignored. A line that does not
// hold exactly four numbers, or that describes an invalid sphere (negative
// or non-finite radius, non-finite center), is skipped and reported in
// Set.Skipped instead of aborting the read.
//
// ReadFile and WriteFile transparently handle compressed files, selecting
// the codec from the extension (.zst, .s2, .lz4).
package spheres

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/R3mmurd/MonteCarlo/compress"
	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/geometry"
	"github.com/R3mmurd/MonteCarlo/internal/hash"
	"github.com/R3mmurd/MonteCarlo/internal/pool"
)

// fieldsPerRecord is the number of values describing one sphere.
const fieldsPerRecord = 4

// SkippedLine describes a record that was discarded while reading.
type SkippedLine struct {
	Line   int    // Line is the 1-based line number.
	Text   string // Text is the trimmed line content.
	Reason string // Reason explains why the record was rejected.
}

// Set is the result of reading a sphere file.
type Set struct {
	Spheres []geometry.Sphere
	Skipped []SkippedLine
}

// Fingerprint returns an xxHash64 over every sphere's center and radius in
// order. Two sets with the same spheres in the same order share a
// fingerprint.
func (s Set) Fingerprint() uint64 {
	return Fingerprint(s.Spheres)
}

// Fingerprint returns an xxHash64 over the spheres' coordinates and radii.
func Fingerprint(spheres []geometry.Sphere) uint64 {
	values, release := pool.GetFloat64Slice(len(spheres) * fieldsPerRecord)
	defer release()

	for i, s := range spheres {
		v := values[i*fieldsPerRecord : (i+1)*fieldsPerRecord]
		v[0], v[1], v[2], v[3] = s.Center.X, s.Center.Y, s.Center.Z, s.Radius
	}

	return hash.Floats(values...)
}

// Read parses a sphere stream. Malformed records are skipped; only I/O
// errors from r are returned. Lines have no length limit.
func Read(r io.Reader) (Set, error) {
	var set Set

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return set, fmt.Errorf("%w: %w", errs.ErrUnreadableInput, err)
		}
		if line == "" && err != nil {
			break
		}

		lineNo++
		text := strings.TrimSpace(line)
		if text != "" && !strings.HasPrefix(text, "#") {
			sphere, reason := parseRecord(text)
			if reason != "" {
				set.Skipped = append(set.Skipped, SkippedLine{Line: lineNo, Text: text, Reason: reason})
			} else {
				set.Spheres = append(set.Spheres, sphere)
			}
		}

		if err != nil {
			break
		}
	}

	return set, nil
}

// parseRecord converts one non-empty line into a sphere. A non-empty reason
// means the record is rejected.
func parseRecord(text string) (geometry.Sphere, string) {
	fields := strings.Fields(text)
	if len(fields) != fieldsPerRecord {
		return geometry.Sphere{}, fmt.Sprintf("expected %d fields, got %d", fieldsPerRecord, len(fields))
	}

	var values [fieldsPerRecord]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Sphere{}, fmt.Sprintf("field %d: invalid number %q", i+1, f)
		}
		values[i] = v
	}

	sphere := geometry.NewSphere(values[0], values[1], values[2], values[3])
	if err := sphere.Validate(); err != nil {
		return geometry.Sphere{}, err.Error()
	}

	return sphere, ""
}

// ReadFile reads a sphere file, decompressing it according to its
// extension. Open, read and decompression failures wrap
// errs.ErrUnreadableInput.
func ReadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("%w: %w", errs.ErrUnreadableInput, err)
	}

	codec, ct := compress.ForPath(path)
	raw, err := codec.Decompress(data)
	if err != nil {
		return Set{}, fmt.Errorf("%w: %s (%s): %w", errs.ErrUnreadableInput, path, ct, err)
	}

	return Read(bytes.NewReader(raw))
}

// Write emits spheres in the text format, one per line. Values use the
// shortest representation that parses back exactly.
func Write(w io.Writer, spheres []geometry.Sphere) error {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	encode(buf, spheres)
	_, err := buf.WriteTo(w)

	return err
}

func encode(buf *pool.Buffer, spheres []geometry.Sphere) {
	for _, s := range spheres {
		buf.AppendFloat(s.Center.X)
		_ = buf.WriteByte(' ')
		buf.AppendFloat(s.Center.Y)
		_ = buf.WriteByte(' ')
		buf.AppendFloat(s.Center.Z)
		_ = buf.WriteByte(' ')
		buf.AppendFloat(s.Radius)
		_ = buf.WriteByte('\n')
	}
}

// WriteFile writes spheres to path, compressing according to the extension.
func WriteFile(path string, spheres []geometry.Sphere) error {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	encode(buf, spheres)

	codec, ct := compress.ForPath(path)
	data, err := codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("compress %s (%s): %w", path, ct, err)
	}

	return os.WriteFile(path, data, 0o644)
}
