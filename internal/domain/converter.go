package domain

import "io"

// Converter defines the interface for split report converters.
type Converter interface {
	// Convert renders a split report to the target format.
	Convert(report *SplitReport, output io.Writer) error

	// Format returns the output format name (e.g., "pdf", "docx").
	Format() string
}

// Encoder serialises a tag document to one output file.
type Encoder interface {
	// Encode writes doc to output.
	Encode(doc *TagDocument, output io.Writer) error

	// Extension returns the file extension, including the dot.
	Extension() string
}
