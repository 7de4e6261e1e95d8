package converters

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

const (
	pdfFormat      = "pdf"
	pdfPageWidth   = 190.0
	pdfMarginLeft  = 10.0
	pdfMarginTop   = 10.0
	pdfMarginRight = 10.0
	pdfLineHeight  = 5.0
)

// PDFConverter renders split reports as PDF documents.
type PDFConverter struct {
	pdf      *gofpdf.Fpdf
	tocItems []tocItem
}

type tocItem struct {
	title  string
	linkID int
}

// NewPDFConverter creates a new PDF converter.
func NewPDFConverter() *PDFConverter {
	return &PDFConverter{}
}

// Format returns the output format name.
func (c *PDFConverter) Format() string {
	return pdfFormat
}

// Convert renders a split report to PDF.
func (c *PDFConverter) Convert(report *domain.SplitReport, output io.Writer) error {
	c.pdf = gofpdf.New("P", "mm", "A4", "")
	c.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	c.pdf.SetDrawColor(180, 180, 180) // Light gray for all borders
	c.tocItems = nil

	for _, tag := range report.Tags {
		c.tocItems = append(c.tocItems, tocItem{title: tag.Tag, linkID: c.pdf.AddLink()})
	}

	c.addTitlePage(report)
	c.addTableOfContents(report)

	for i, tag := range report.Tags {
		c.addTag(i, tag)
	}

	return c.pdf.Output(output)
}

func (c *PDFConverter) addTitlePage(report *domain.SplitReport) {
	c.pdf.AddPage()

	c.pdf.SetFont("Arial", "B", 24)
	c.pdf.Ln(40)
	c.pdf.MultiCell(pdfPageWidth, 12, reportTitle(report), "", "C", false)
	c.pdf.Ln(5)

	if report.Version != "" {
		c.pdf.SetFont("Arial", "", 14)
		c.pdf.SetTextColor(100, 100, 100)
		c.pdf.CellFormat(pdfPageWidth, 8, fmt.Sprintf("Version %s", report.Version), "", 1, "C", false, 0, "")
		c.pdf.SetTextColor(0, 0, 0)
	}
	c.pdf.Ln(20)

	c.pdf.SetFont("Arial", "", 11)
	c.pdf.MultiCell(pdfPageWidth, 6, formatSummary(report), "", "C", false)

	if report.Source != "" {
		c.pdf.Ln(30)
		c.pdf.SetFont("Arial", "", 10)
		c.pdf.SetTextColor(128, 128, 128)
		c.pdf.CellFormat(pdfPageWidth, 6, fmt.Sprintf("Source: %s", report.Source), "", 1, "C", false, 0, "")
		c.pdf.SetTextColor(0, 0, 0)
	}
}

func (c *PDFConverter) addTableOfContents(report *domain.SplitReport) {
	c.pdf.AddPage()
	c.addSectionHeader("Tags")

	colWidths := []float64{90, 33, 33, 34}
	c.pdf.SetFont("Arial", "B", 9)
	c.pdf.SetFillColor(240, 240, 240)
	for i, header := range []string{"Tag", "Paths", "Definitions", "Unresolved"} {
		c.pdf.CellFormat(colWidths[i], 7, header, "1", 0, "", true, 0, "")
	}
	c.pdf.Ln(-1)

	c.pdf.SetFont("Arial", "", 9)
	for i, tag := range report.Tags {
		c.addTableRow(colWidths,
			[]string{
				tag.Tag,
				fmt.Sprintf("%d", len(tag.Paths)),
				fmt.Sprintf("%d", len(tag.Definitions)),
				fmt.Sprintf("%d", len(tag.Unresolved)),
			},
			[]string{"", "C", "C", "C"},
			[]int{c.tocItems[i].linkID},
		)
	}
}

func (c *PDFConverter) addTag(index int, tag domain.TagSummary) {
	c.pdf.AddPage()
	c.pdf.SetLink(c.tocItems[index].linkID, -1, -1)
	c.addSectionHeader(tag.Tag)

	if tag.File != "" {
		c.pdf.SetFont("Arial", "", 8)
		c.pdf.SetTextColor(128, 128, 128)
		c.pdf.CellFormat(pdfPageWidth, 4, fmt.Sprintf("File: %s", tag.File), "", 1, "", false, 0, "")
		c.pdf.SetTextColor(0, 0, 0)
		c.pdf.Ln(2)
	}

	if len(tag.Operations) > 0 {
		c.addSubHeader("Operations")
		for _, op := range tag.Operations {
			c.addOperation(op)
		}
		c.pdf.Ln(3)
	}

	c.addSubHeader("Definitions")
	c.pdf.SetFont("Arial", "", 9)
	c.pdf.MultiCell(pdfPageWidth, pdfLineHeight, formatList(tag.Definitions), "", "", false)
	c.pdf.Ln(3)

	if len(tag.Unresolved) > 0 {
		c.addSubHeader("Unresolved references")
		c.pdf.SetFont("Arial", "", 9)
		c.pdf.SetTextColor(249, 62, 62)
		for _, ref := range tag.Unresolved {
			c.pdf.CellFormat(pdfPageWidth, pdfLineHeight, ref, "", 1, "", false, 0, "")
		}
		c.pdf.SetTextColor(0, 0, 0)
	}
}

func (c *PDFConverter) addOperation(op domain.OperationRef) {
	methodColors := map[string][3]int{
		"GET":     {97, 175, 254},  // Blue
		"POST":    {73, 204, 144},  // Green
		"PUT":     {252, 161, 48},  // Orange
		"DELETE":  {249, 62, 62},   // Red
		"PATCH":   {80, 227, 194},  // Teal
		"HEAD":    {144, 97, 249},  // Purple
		"OPTIONS": {128, 128, 128}, // Gray
	}

	color, ok := methodColors[op.Method]
	if !ok {
		color = [3]int{128, 128, 128}
	}

	c.checkPageBreak(8)
	c.pdf.SetFont("Arial", "B", 9)
	c.pdf.SetFillColor(color[0], color[1], color[2])
	c.pdf.SetTextColor(255, 255, 255)
	c.pdf.CellFormat(20, 6, op.Method, "", 0, "C", true, 0, "")

	c.pdf.SetTextColor(0, 0, 0)
	c.pdf.SetFont("Arial", "", 9)
	c.pdf.CellFormat(pdfPageWidth-20, 6, " "+op.Path, "", 1, "", false, 0, "")
	c.pdf.Ln(1)
}

func (c *PDFConverter) addSectionHeader(title string) {
	c.pdf.SetFont("Arial", "B", 18)
	c.pdf.CellFormat(pdfPageWidth, 10, title, "", 1, "", false, 0, "")
	c.pdf.Ln(4)
}

func (c *PDFConverter) addSubHeader(title string) {
	c.pdf.SetFont("Arial", "B", 10)
	c.pdf.SetTextColor(60, 60, 60)
	c.pdf.CellFormat(pdfPageWidth, 6, title, "", 1, "", false, 0, "")
	c.pdf.SetTextColor(0, 0, 0)
}

func (c *PDFConverter) checkPageBreak(height float64) {
	_, pageHeight := c.pdf.GetPageSize()
	_, _, _, bottomMargin := c.pdf.GetMargins()

	if c.pdf.GetY()+height > pageHeight-bottomMargin-10 {
		c.pdf.AddPage()
	}
}

func (c *PDFConverter) addTableRow(colWidths []float64, contents []string, aligns []string, linkIDs []int) {
	// Calculate max height based on content wrapping
	maxLines := 1
	for i, content := range contents {
		lines := c.pdf.SplitLines([]byte(content), colWidths[i])
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}

	rowHeight := float64(maxLines) * pdfLineHeight

	c.checkPageBreak(rowHeight)

	startX := c.pdf.GetX()
	startY := c.pdf.GetY()

	for i, content := range contents {
		width := colWidths[i]

		align := ""
		if len(aligns) > i {
			align = aligns[i]
		}

		linkID := 0
		if len(linkIDs) > i {
			linkID = linkIDs[i]
		}

		if linkID > 0 {
			c.pdf.SetTextColor(0, 102, 204)
		}

		c.pdf.SetXY(startX, startY)
		c.pdf.MultiCell(width, pdfLineHeight, content, "0", align, false)
		if linkID > 0 {
			c.pdf.Link(startX, startY, width, rowHeight, linkID)
			c.pdf.SetTextColor(0, 0, 0)
		}

		c.pdf.Rect(startX, startY, width, rowHeight, "D")

		startX += width
	}

	c.pdf.SetXY(pdfMarginLeft, startY+rowHeight)
}
