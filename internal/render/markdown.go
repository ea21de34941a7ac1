// Package render serializes a deck document to its display form.
package render

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/deckmine/internal/deck"
)

// Markdown renders the document as readable Markdown: a document header,
// then one section per slide with content paragraphs, tables (first row as
// header), and speaker notes as an italicized trailing line. Pure function.
func Markdown(doc *deck.Document) string {
	var lines []string

	header := doc.Metadata.Title
	if header == "" {
		header = doc.SourceFile
	}
	if header == "" {
		header = "Presentation"
	}
	lines = append(lines, "# "+header, "")
	if doc.Metadata.Author != "" {
		lines = append(lines, "**Author:** "+doc.Metadata.Author)
	}
	lines = append(lines, fmt.Sprintf("**Slides:** %d", doc.Metadata.SlideCount), "", "---", "")

	for _, slide := range doc.Slides {
		title := slide.Title
		if title == "" {
			title = "Untitled"
		}
		lines = append(lines, fmt.Sprintf("## Slide %d: %s", slide.Number, title), "")

		for _, block := range slide.Content {
			lines = append(lines, block, "")
		}

		for _, table := range slide.Tables {
			if len(table) == 0 {
				continue
			}
			lines = append(lines, "| "+strings.Join(table[0], " | ")+" |")
			separators := make([]string, len(table[0]))
			for i := range separators {
				separators[i] = "---"
			}
			lines = append(lines, "| "+strings.Join(separators, " | ")+" |")
			for _, row := range table[1:] {
				lines = append(lines, "| "+strings.Join(row, " | ")+" |")
			}
			lines = append(lines, "")
		}

		if slide.Notes != "" {
			lines = append(lines, fmt.Sprintf("*Notes: %s*", slide.Notes), "")
		}

		lines = append(lines, "---", "")
	}

	return strings.Join(lines, "\n")
}
