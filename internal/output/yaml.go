package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/optview/pkg/counter"
)

// YAMLWriter buffers records and writes them as a YAML sequence.
type YAMLWriter struct {
	w       *bufio.Writer
	records counter.Records
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:       bufio.NewWriter(w),
		records: counter.Records{},
	}
}

// Write buffers a single record.
func (w *YAMLWriter) Write(r counter.Record) error {
	w.records = append(w.records, r)
	return nil
}

// WriteAll buffers a batch of records.
func (w *YAMLWriter) WriteAll(rs counter.Records) error {
	w.records = append(w.records, rs...)
	return nil
}

// Flush writes the buffered records.
func (w *YAMLWriter) Flush() error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(w.records); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
