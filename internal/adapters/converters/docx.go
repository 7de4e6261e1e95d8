package converters

import (
	"fmt"
	"io"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

const docxFormat = "docx"

// DocxConverter renders split reports as Word (DOCX) documents.
type DocxConverter struct{}

// NewDocxConverter creates a new DOCX converter.
func NewDocxConverter() *DocxConverter {
	return &DocxConverter{}
}

// Format returns the output format name.
func (c *DocxConverter) Format() string {
	return docxFormat
}

// Convert renders a split report to DOCX.
func (c *DocxConverter) Convert(report *domain.SplitReport, output io.Writer) error {
	document, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	c.addTitle(document, report)
	for _, tag := range report.Tags {
		c.addTag(document, tag)
	}

	if err := document.Write(output); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (c *DocxConverter) addTitle(document *docx.RootDoc, report *domain.SplitReport) {
	_, _ = document.AddHeading(reportTitle(report), 0) // Level 0 = Title style

	if report.Version != "" {
		document.AddParagraph(fmt.Sprintf("Version: %s", report.Version))
	}
	if report.Source != "" {
		document.AddParagraph(fmt.Sprintf("Source: %s", report.Source))
	}
	document.AddParagraph(formatSummary(report))
	document.AddEmptyParagraph()
}

func (c *DocxConverter) addTag(document *docx.RootDoc, tag domain.TagSummary) {
	_, _ = document.AddHeading(tag.Tag, 1)

	if tag.File != "" {
		document.AddParagraph(fmt.Sprintf("File: %s", tag.File))
	}

	if len(tag.Operations) > 0 {
		_, _ = document.AddHeading("Operations", 2)

		for _, op := range tag.Operations {
			document.AddParagraph(fmt.Sprintf("• %s", formatOperation(op)))
		}
	}

	_, _ = document.AddHeading("Definitions", 2)
	document.AddParagraph(formatList(tag.Definitions))

	if len(tag.Unresolved) > 0 {
		_, _ = document.AddHeading("Unresolved references", 2)

		for _, ref := range tag.Unresolved {
			document.AddParagraph(fmt.Sprintf("• %s", ref))
		}
	}

	document.AddEmptyParagraph()
}
