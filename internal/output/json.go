package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jmylchreest/optview/pkg/counter"
)

// JSONWriter buffers records and writes them as one JSON array.
type JSONWriter struct {
	w       *bufio.Writer
	pretty  bool
	indent  string
	records counter.Records
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:       bufio.NewWriter(w),
		pretty:  pretty,
		indent:  indent,
		records: counter.Records{},
	}
}

// Write buffers a single record.
func (w *JSONWriter) Write(r counter.Record) error {
	w.records = append(w.records, r)
	return nil
}

// WriteAll buffers a batch of records.
func (w *JSONWriter) WriteAll(rs counter.Records) error {
	w.records = append(w.records, rs...)
	return nil
}

// Flush writes the buffered records. An empty batch is written as [].
func (w *JSONWriter) Flush() error {
	var data []byte
	var err error
	if w.pretty {
		data, err = json.MarshalIndent(w.records, "", w.indent)
	} else {
		data, err = json.Marshal(w.records)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(data); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// JSONLWriter writes one JSON object per line.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: bufio.NewWriter(w)}
}

// Write writes a single record as a JSON line.
func (w *JSONLWriter) Write(r counter.Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// WriteAll writes each record as its own line.
func (w *JSONLWriter) WriteAll(rs counter.Records) error {
	for _, r := range rs {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}
