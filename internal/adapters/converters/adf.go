package converters

import (
	"fmt"
	"io"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/adapters/codec"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

const adfFormat = "confluence"

// ADFConverter renders split reports as Atlassian Document Format (ADF) for Confluence.
type ADFConverter struct{}

// NewADFConverter creates a new ADF converter.
func NewADFConverter() *ADFConverter {
	return &ADFConverter{}
}

// Format returns the output format name.
func (c *ADFConverter) Format() string {
	return adfFormat
}

// ADF node types.
type adfDocument struct {
	Version int       `json:"version"`
	Type    string    `json:"type"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Attrs   *adfAttrs `json:"attrs,omitempty"`
	Content []adfNode `json:"content,omitempty"`
	Text    string    `json:"text,omitempty"`
	Marks   []adfMark `json:"marks,omitempty"`
}

type adfAttrs struct {
	Level int `json:"level,omitempty"`
}

type adfMark struct {
	Type string `json:"type"`
}

// Convert renders a split report to ADF JSON.
func (c *ADFConverter) Convert(report *domain.SplitReport, output io.Writer) error {
	adf := &adfDocument{
		Version: 1,
		Type:    "doc",
		Content: []adfNode{},
	}

	adf.Content = append(adf.Content, c.heading(reportTitle(report), 1))
	if report.Version != "" {
		adf.Content = append(adf.Content, c.paragraph(fmt.Sprintf("Version: %s", report.Version)))
	}
	if report.Source != "" {
		adf.Content = append(adf.Content, adfNode{
			Type:    "paragraph",
			Content: []adfNode{{Type: "text", Text: "Source: "}, c.codeText(report.Source)},
		})
	}
	adf.Content = append(adf.Content, c.paragraph(formatSummary(report)))

	for _, tag := range report.Tags {
		adf.Content = append(adf.Content, c.tagNodes(tag)...)
	}

	data, err := codec.Marshal(adf)
	if err != nil {
		return fmt.Errorf("failed to encode ADF: %w", err)
	}

	if _, err := output.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ADF: %w", err)
	}

	return nil
}

func (c *ADFConverter) tagNodes(tag domain.TagSummary) []adfNode {
	nodes := []adfNode{c.heading(tag.Tag, 2)}

	if tag.File != "" {
		nodes = append(nodes, adfNode{
			Type:    "paragraph",
			Content: []adfNode{{Type: "text", Text: "File: "}, c.codeText(tag.File)},
		})
	}

	if len(tag.Operations) > 0 {
		nodes = append(nodes, c.heading("Operations", 3))
		ops := make([]string, 0, len(tag.Operations))
		for _, op := range tag.Operations {
			ops = append(ops, formatOperation(op))
		}
		nodes = append(nodes, c.codeList(ops))
	}

	nodes = append(nodes, c.heading("Definitions", 3))
	if len(tag.Definitions) > 0 {
		nodes = append(nodes, c.codeList(tag.Definitions))
	} else {
		nodes = append(nodes, c.paragraph(formatList(nil)))
	}

	if len(tag.Unresolved) > 0 {
		nodes = append(nodes, c.heading("Unresolved references", 3))
		nodes = append(nodes, c.codeList(tag.Unresolved))
	}

	// Divider between tags
	nodes = append(nodes, adfNode{Type: "rule"})

	return nodes
}

func (c *ADFConverter) heading(text string, level int) adfNode {
	return adfNode{
		Type:  "heading",
		Attrs: &adfAttrs{Level: level},
		Content: []adfNode{
			{Type: "text", Text: text},
		},
	}
}

func (c *ADFConverter) paragraph(text string) adfNode {
	return adfNode{
		Type: "paragraph",
		Content: []adfNode{
			{Type: "text", Text: text},
		},
	}
}

func (c *ADFConverter) codeText(text string) adfNode {
	return adfNode{
		Type: "text",
		Text: text,
		Marks: []adfMark{
			{Type: "code"},
		},
	}
}

func (c *ADFConverter) codeList(items []string) adfNode {
	list := make([]adfNode, 0, len(items))

	for _, item := range items {
		list = append(list, adfNode{
			Type: "listItem",
			Content: []adfNode{
				{
					Type:    "paragraph",
					Content: []adfNode{c.codeText(item)},
				},
			},
		})
	}

	return adfNode{
		Type:    "bulletList",
		Content: list,
	}
}
