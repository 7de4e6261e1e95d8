// Package converters renders split reports to document formats.
package converters

import (
	"fmt"
	"strings"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

// Formats lists the supported report formats.
var Formats = []string{pdfFormat, docxFormat, adfFormat}

// ForFormat returns the converter for the named report format.
func ForFormat(format string) (domain.Converter, error) {
	switch strings.ToLower(format) {
	case pdfFormat:
		return NewPDFConverter(), nil
	case docxFormat, "word":
		return NewDocxConverter(), nil
	case adfFormat, "adf":
		return NewADFConverter(), nil
	default:
		return nil, &domain.ConfigError{Option: "report format", Value: format, Allowed: Formats}
	}
}

// reportTitle returns the heading used for a report.
func reportTitle(report *domain.SplitReport) string {
	if report.Title == "" {
		return "Split report"
	}
	return fmt.Sprintf("%s: split report", report.Title)
}

// formatSummary returns the one-line totals of a report.
func formatSummary(report *domain.SplitReport) string {
	return fmt.Sprintf("%d tag documents, %d definitions, %d $ref values normalized",
		len(report.Tags), report.DefinitionCount(), report.RefChanges)
}

// formatOperation returns a styled method and path.
func formatOperation(op domain.OperationRef) string {
	return fmt.Sprintf("%s %s", strings.ToUpper(op.Method), op.Path)
}

// formatList joins names, or returns "None" for an empty list.
func formatList(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
