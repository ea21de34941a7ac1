// Package deck defines the normalized slide-deck document model shared by
// the PPTX reader, the renderers, and the community miner.
package deck

// Metadata carries the document core properties. Created and Modified hold
// the raw ISO-8601 strings from docProps/core.xml; empty when absent.
type Metadata struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Subject    string `json:"subject"`
	Created    string `json:"created"`
	Modified   string `json:"modified"`
	SlideCount int    `json:"slide_count"`
}

// Slide is the flattened content of one slide. Content holds one entry per
// non-title text shape (paragraphs joined by newlines, trimmed); Tables holds
// one entry per table shape as rows of trimmed cell strings.
type Slide struct {
	Number  int          `json:"number"`
	Title   string       `json:"title"`
	Content []string     `json:"content"`
	Tables  [][][]string `json:"tables"`
	Notes   string       `json:"notes"`
}

// Document is the full extraction of one presentation. Field order matters:
// it fixes the key order of the JSON interchange form.
type Document struct {
	Metadata   Metadata `json:"metadata"`
	Slides     []Slide  `json:"slides"`
	SourceFile string   `json:"source_file"`
}
