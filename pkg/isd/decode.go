package isd

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
)

// Record holds the mandatory-section fields of one observation line, keyed
// by field name. A missing key means the line was too short to reach the
// field or the raw value was blank; values are whitespace-trimmed but
// otherwise untouched.
type Record map[string]string

// Get returns the value of a field and whether it was present.
func (r Record) Get(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// DecodeLine extracts the mandatory-section fields from one raw line. It
// walks the fixed layout left to right with a byte cursor; once the line
// runs out, the remaining fields are absent. Bytes past the mandatory
// section (optional and remarks data) are ignored. DecodeLine is total: it
// never fails, whatever the input, including the empty string.
func DecodeLine(line string) Record {
	rec := make(Record, len(Fields))
	pos := 0
	for _, f := range Fields {
		end := pos + f.Width
		if end > len(line) {
			break
		}
		if v := strings.TrimSpace(line[pos:end]); v != "" {
			rec[f.Name] = v
		}
		pos = end
	}
	return rec
}

// DecodeAll decodes a raw year file into records, one per non-blank line.
// The input may be gzip-compressed or plain text: gzip is attempted first
// and any decompression failure falls back to reading the bytes as-is.
// Lines are decoded independently; empty input yields no records.
func DecodeAll(data []byte) []Record {
	text := strings.TrimSpace(inflate(data))
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, DecodeLine(line))
	}
	return records
}

// inflate gunzips data, returning the input unchanged when it is not valid
// gzip. Year files are gzipped by convention but cached or hand-supplied
// files may be plain text.
func inflate(data []byte) string {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return string(data)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return string(data)
	}
	return string(out)
}
