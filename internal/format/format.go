// Package format defines the supported output formats.
package format

import "fmt"

// Tag selects an output format.
type Tag string

const (
	CSV   Tag = "csv"
	JSON  Tag = "json"
	JSONL Tag = "jsonl"
	TXT   Tag = "txt"
	LOG   Tag = "log"
	XML   Tag = "xml"
	HTML  Tag = "html"
	ZIP   Tag = "zip"
	TSV   Tag = "tsv"
)

// All returns every supported format in default generation order.
// A new slice is returned on each call.
func All() []Tag {
	return []Tag{CSV, JSON, JSONL, TXT, LOG, XML, HTML, ZIP, TSV}
}

// Names returns the names of all supported formats.
func Names() []string {
	tags := All()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = string(tag)
	}
	return names
}

// UnsupportedFormatError is returned for an unrecognised format tag.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// Parse converts a format name into a Tag. Names are matched exactly.
func Parse(name string) (Tag, error) {
	tag := Tag(name)
	switch tag {
	case CSV, JSON, JSONL, TXT, LOG, XML, HTML, ZIP, TSV:
		return tag, nil
	default:
		return "", &UnsupportedFormatError{Format: name}
	}
}

// Extension returns the file extension used for the format, without the dot.
func (t Tag) Extension() string {
	return string(t)
}
