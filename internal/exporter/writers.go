package exporter

import (
	"archive/zip"
	"bufio"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/elliotjreed/idgen/internal/format"
	"github.com/elliotjreed/idgen/internal/generator"
)

const (
	// TempCSVName is the intermediate file archived by the zip format.
	TempCSVName = "temp.csv"

	xmlDeclaration = "<?xml version='1.0' encoding='utf-8'?>\n"
)

var csvHeader = []string{"ID_Type", "ID_Value"}

type jsonDocument struct {
	IDs generator.RecordSet `json:"IDs"`
}

type xmlID struct {
	XMLName xml.Name `xml:"ID"`
	Type    string   `xml:"type,attr"`
	Value   string   `xml:",chardata"`
}

type xmlDocument struct {
	XMLName xml.Name `xml:"IDs"`
	IDs     []xmlID `xml:"ID"`
}

// Serialize writes records to path in the given format, creating or
// truncating the file. There is no atomic replace: a failed write can leave
// a partial file behind.
func Serialize(records generator.RecordSet, tag format.Tag, path string) error {
	switch tag {
	case format.CSV:
		return writeFile(path, func(w io.Writer) error { return writeDelimited(w, records, ',') })
	case format.TSV:
		return writeFile(path, func(w io.Writer) error { return writeDelimited(w, records, '\t') })
	case format.JSON:
		return writeFile(path, func(w io.Writer) error { return writeJSON(w, records) })
	case format.JSONL:
		return writeFile(path, func(w io.Writer) error { return writeJSONL(w, records) })
	case format.TXT, format.LOG:
		return writeFile(path, func(w io.Writer) error { return writeText(w, records) })
	case format.XML:
		return writeFile(path, func(w io.Writer) error { return writeXML(w, records) })
	case format.HTML:
		return writeFile(path, func(w io.Writer) error { return writeHTML(w, records) })
	case format.ZIP:
		return writeZIP(records, path)
	default:
		return &format.UnsupportedFormatError{Format: string(tag)}
	}
}

// writeFile creates path and hands a buffered writer to render.
func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := render(w); err != nil {
		return err
	}
	return w.Flush()
}

func writeDelimited(w io.Writer, records generator.RecordSet, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write([]string{string(rec.Type), rec.Value}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, records generator.RecordSet) error {
	// An empty set must still encode as [] rather than null.
	if records == nil {
		records = generator.RecordSet{}
	}

	data, err := json.MarshalIndent(jsonDocument{IDs: records}, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeJSONL(w io.Writer, records generator.RecordSet) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, records generator.RecordSet) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%s: %s\n", rec.Type, rec.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeXML(w io.Writer, records generator.RecordSet) error {
	doc := xmlDocument{IDs: make([]xmlID, len(records))}
	for i, rec := range records {
		doc.IDs[i] = xmlID{Type: string(rec.Type), Value: rec.Value}
	}

	if _, err := io.WriteString(w, xmlDeclaration); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(doc)
}

// writeHTML does not escape values; generated identifiers are alphanumeric
// with hyphens only.
func writeHTML(w io.Writer, records generator.RecordSet) error {
	if _, err := io.WriteString(w, "<html><body><table border='1'>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<tr><th>ID Type</th><th>ID Value</th></tr>\n"); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td></tr>\n", rec.Type, rec.Value); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table></body></html>")
	return err
}

// writeZIP renders the records as CSV into temp.csv next to the archive,
// stores that file as the archive's only member and removes it again.
func writeZIP(records generator.RecordSet, path string) error {
	tempPath := filepath.Join(filepath.Dir(path), TempCSVName)
	defer os.Remove(tempPath)

	if err := writeFile(tempPath, func(w io.Writer) error { return writeDelimited(w, records, ',') }); err != nil {
		return fmt.Errorf("failed to write %s: %w", TempCSVName, err)
	}

	return writeFile(path, func(w io.Writer) error { return archiveFile(w, tempPath) })
}

func archiveFile(w io.Writer, src string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Method = zip.Store

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(w)
	member, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(member, f); err != nil {
		return err
	}
	return zw.Close()
}
