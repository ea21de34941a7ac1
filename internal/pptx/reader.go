// Package pptx reads PPTX presentations into the deck document model. It
// opens the file as a ZIP archive and parses the slide, notes, and core
// property parts directly with encoding/xml.
package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hyperifyio/deckmine/internal/deck"
)

// ErrUnreadableDocument is wrapped by all failures to open or parse a
// presentation: not a ZIP archive, missing required parts, or no parseable
// slides. Callers treat it as a fatal input error.
var ErrUnreadableDocument = fmt.Errorf("unreadable presentation document")

// Extract reads the presentation at the given path into a deck.Document.
// When selected is non-nil, slides whose 1-based number is absent from the
// set are skipped; metadata still reflects the whole deck. Extract performs
// a pure read and is deterministic for a given input file.
func Extract(path string, selected map[int]bool) (*deck.Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	defer zr.Close()

	if err := validate(&zr.Reader); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	doc := &deck.Document{
		Slides:     []deck.Slide{},
		SourceFile: filepath.Base(path),
	}
	readCoreProperties(&zr.Reader, &doc.Metadata)

	slidePaths := sortedSlidePaths(&zr.Reader)
	doc.Metadata.SlideCount = len(slidePaths)

	parsed := 0
	for i, slidePath := range slidePaths {
		number := i + 1
		slide, err := parseSlide(&zr.Reader, slidePath, number)
		if err != nil {
			continue
		}
		parsed++
		if selected != nil && !selected[number] {
			continue
		}
		slide.Notes = readNotes(&zr.Reader, slidePath)
		doc.Slides = append(doc.Slides, slide)
	}
	if parsed == 0 {
		return nil, fmt.Errorf("%w: no slides could be parsed", ErrUnreadableDocument)
	}
	return doc, nil
}

// validate checks the archive contains the required presentation parts and
// at least one slide.
func validate(zr *zip.Reader) error {
	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, required := range []string{"[Content_Types].xml", "ppt/presentation.xml"} {
		if !names[required] {
			return fmt.Errorf("missing required part %s", required)
		}
	}
	for name := range names {
		if isSlidePath(name) {
			return nil
		}
	}
	return fmt.Errorf("no slides found in presentation")
}

func isSlidePath(name string) bool {
	return strings.HasPrefix(name, "ppt/slides/slide") &&
		strings.HasSuffix(name, ".xml") &&
		!strings.Contains(name, "_rels")
}

func sortedSlidePaths(zr *zip.Reader) []string {
	paths := make([]string, 0)
	for _, f := range zr.File {
		if isSlidePath(f.Name) {
			paths = append(paths, f.Name)
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		return slideFileNumber(paths[i]) < slideFileNumber(paths[j])
	})
	return paths
}

// slideFileNumber extracts N from "ppt/slides/slideN.xml".
func slideFileNumber(p string) int {
	name := strings.TrimPrefix(p, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var n int
	fmt.Sscanf(name, "%d", &n)
	return n
}

func fileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("part not found: %s", name)
}

func parseSlide(zr *zip.Reader, slidePath string, number int) (deck.Slide, error) {
	data, err := fileContent(zr, slidePath)
	if err != nil {
		return deck.Slide{}, err
	}
	var sx slideXML
	if err := xml.Unmarshal(data, &sx); err != nil {
		return deck.Slide{}, err
	}

	slide := deck.Slide{
		Number:  number,
		Content: []string{},
		Tables:  [][][]string{},
	}

	shapes := collectShapes(&sx.CSld.SpTree)
	for _, sp := range shapes {
		if isTitlePlaceholder(sp) {
			slide.Title = shapeText(sp)
			break
		}
	}
	for _, sp := range shapes {
		text := shapeText(sp)
		// Structural comparison against the title text also drops the title
		// shape itself, so no shape-identity bookkeeping is needed.
		if text != "" && text != slide.Title {
			slide.Content = append(slide.Content, text)
		}
	}
	for _, gf := range sx.CSld.SpTree.GraphicFrame {
		if gf.Graphic.GraphicData.Tbl == nil {
			continue
		}
		if rows := tableRows(gf.Graphic.GraphicData.Tbl); len(rows) > 0 {
			slide.Tables = append(slide.Tables, rows)
		}
	}
	return slide, nil
}

// collectShapes flattens the shape tree in document order, descending into
// shape groups.
func collectShapes(tree *spTreeXML) []*spXML {
	shapes := make([]*spXML, 0, len(tree.Sp))
	for i := range tree.Sp {
		shapes = append(shapes, &tree.Sp[i])
	}
	for i := range tree.GrpSp {
		shapes = append(shapes, collectGroup(&tree.GrpSp[i])...)
	}
	return shapes
}

func collectGroup(grp *grpSpXML) []*spXML {
	shapes := make([]*spXML, 0, len(grp.Sp))
	for i := range grp.Sp {
		shapes = append(shapes, &grp.Sp[i])
	}
	for i := range grp.GrpSp {
		shapes = append(shapes, collectGroup(&grp.GrpSp[i])...)
	}
	return shapes
}

func isTitlePlaceholder(sp *spXML) bool {
	ph := sp.NvSpPr.NvPr.Ph
	if ph == nil {
		return false
	}
	return ph.Type == "title" || ph.Type == "ctrTitle"
}

// shapeText joins the non-empty paragraph texts of a shape with newlines.
func shapeText(sp *spXML) string {
	if sp.TxBody == nil {
		return ""
	}
	parts := make([]string, 0, len(sp.TxBody.P))
	for i := range sp.TxBody.P {
		if t := paragraphText(&sp.TxBody.P[i]); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func paragraphText(p *pXML) string {
	var b strings.Builder
	for _, r := range p.R {
		b.WriteString(r.T)
	}
	for _, fld := range p.Fld {
		b.WriteString(fld.T)
	}
	return strings.TrimSpace(b.String())
}

func tableRows(tbl *tblXML) [][]string {
	rows := make([][]string, 0, len(tbl.Tr))
	for _, tr := range tbl.Tr {
		row := make([]string, 0, len(tr.Tc))
		for i := range tr.Tc {
			row = append(row, cellText(&tr.Tc[i]))
		}
		rows = append(rows, row)
	}
	return rows
}

func cellText(tc *tcXML) string {
	if tc.TxBody == nil {
		return ""
	}
	parts := make([]string, 0, len(tc.TxBody.P))
	for i := range tc.TxBody.P {
		if t := paragraphText(&tc.TxBody.P[i]); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// readNotes resolves a slide's notes part through its relationships file and
// returns the trimmed notes text. Absent notes are the empty string, never
// an error.
func readNotes(zr *zip.Reader, slidePath string) string {
	relsPath := path.Join(path.Dir(slidePath), "_rels", path.Base(slidePath)+".rels")
	data, err := fileContent(zr, relsPath)
	if err != nil {
		return ""
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return ""
	}

	var notesPath string
	for _, rel := range rels.Relationship {
		if strings.Contains(rel.Type, "notesSlide") {
			notesPath = rel.Target
			break
		}
	}
	if notesPath == "" {
		return ""
	}
	if strings.HasPrefix(notesPath, "../") {
		notesPath = "ppt/" + strings.TrimPrefix(notesPath, "../")
	} else if !strings.HasPrefix(notesPath, "ppt/") {
		notesPath = "ppt/slides/" + notesPath
	}

	data, err = fileContent(zr, notesPath)
	if err != nil {
		return ""
	}
	var notes notesSlideXML
	if err := xml.Unmarshal(data, &notes); err != nil {
		return ""
	}

	var b strings.Builder
	for i := range notes.CSld.SpTree.Sp {
		sp := &notes.CSld.SpTree.Sp[i]
		// Skip the slide-image and slide-number placeholders.
		if ph := sp.NvSpPr.NvPr.Ph; ph != nil && (ph.Type == "sldImg" || ph.Type == "sldNum") {
			continue
		}
		if t := shapeText(sp); t != "" {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(t)
		}
	}
	return strings.TrimSpace(b.String())
}

// readCoreProperties fills metadata from docProps/core.xml when present.
func readCoreProperties(zr *zip.Reader, meta *deck.Metadata) {
	data, err := fileContent(zr, "docProps/core.xml")
	if err != nil {
		return
	}
	var core corePropertiesXML
	if err := xml.Unmarshal(data, &core); err != nil {
		return
	}
	meta.Title = core.Title
	meta.Author = core.Creator
	meta.Subject = core.Subject
	meta.Created = core.Created
	meta.Modified = core.Modified
}
