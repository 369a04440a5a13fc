// Package export serializes finished reports to disk.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/de-tools/risk-atlas/pkg/adapters"
	"github.com/de-tools/risk-atlas/pkg/models/domain"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json or yaml): %w", s, domain.ErrInvalidInput)
	}
}

// DefaultFilename names an export the way the report timestamp reads, e.g.
// risk_report_20260826_153000.json.
func DefaultFilename(now time.Time, f Format) string {
	return fmt.Sprintf("risk_report_%s.%s", now.Format("20060102_150405"), f)
}

// Writer serializes reports in a fixed format.
type Writer struct {
	format Format
}

func NewWriter(format Format) *Writer {
	return &Writer{format: format}
}

// Write marshals the report and writes it to path. The write is
// all-or-nothing: the document lands in a temp file in the destination
// directory first and is renamed into place, so a failure never leaves a
// partial export behind.
func (w *Writer) Write(report domain.Report, path string) error {
	data, err := w.marshal(report)
	if err != nil {
		return fmt.Errorf("serializing report %s: %v: %w", report.ID, err, domain.ErrExportFailure)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".risk_report-*")
	if err != nil {
		return fmt.Errorf("creating export file in %s: %v: %w", dir, err, domain.ErrExportFailure)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing export file %s: %v: %w", path, err, domain.ErrExportFailure)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing export file %s: %v: %w", path, err, domain.ErrExportFailure)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("finalizing export file %s: %v: %w", path, err, domain.ErrExportFailure)
	}
	return nil
}

func (w *Writer) marshal(report domain.Report) ([]byte, error) {
	doc := adapters.MapReportDomainToApi(report)
	switch w.format {
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return json.MarshalIndent(doc, "", "  ")
	}
}
