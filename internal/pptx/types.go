package pptx

import "encoding/xml"

// XML structures for the subset of the Office Open XML presentation format
// the extractor reads: slide shape trees, tables, speaker notes,
// relationships, and core document properties.

type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	SpTree spTreeXML `xml:"spTree"`
}

type spTreeXML struct {
	Sp           []spXML           `xml:"sp"`
	GraphicFrame []graphicFrameXML `xml:"graphicFrame"`
	GrpSp        []grpSpXML        `xml:"grpSp"`
}

type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	NvPr nvPrXML `xml:"nvPr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"`
}

type phXML struct {
	Type string `xml:"type,attr"`
}

type txBodyXML struct {
	P []pXML `xml:"p"`
}

type pXML struct {
	R   []rXML   `xml:"r"`
	Fld []fldXML `xml:"fld"`
}

type rXML struct {
	T string `xml:"t"`
}

type fldXML struct {
	T string `xml:"t"`
}

type grpSpXML struct {
	Sp    []spXML    `xml:"sp"`
	GrpSp []grpSpXML `xml:"grpSp"`
}

type graphicFrameXML struct {
	Graphic graphicXML `xml:"graphic"`
}

type graphicXML struct {
	GraphicData graphicDataXML `xml:"graphicData"`
}

type graphicDataXML struct {
	Tbl *tblXML `xml:"tbl"`
}

type tblXML struct {
	Tr []trXML `xml:"tr"`
}

type trXML struct {
	Tc []tcXML `xml:"tc"`
}

type tcXML struct {
	TxBody *txBodyXML `xml:"txBody"`
}

// notesSlideXML is a ppt/notesSlides/notesSlideN.xml file.
type notesSlideXML struct {
	XMLName xml.Name `xml:"notes"`
	CSld    cSldXML  `xml:"cSld"`
}

type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// corePropertiesXML is docProps/core.xml. Created and Modified are the
// dcterms timestamps, kept as the raw ISO-8601 strings.
type corePropertiesXML struct {
	XMLName  xml.Name `xml:"coreProperties"`
	Title    string   `xml:"title"`
	Subject  string   `xml:"subject"`
	Creator  string   `xml:"creator"`
	Created  string   `xml:"created"`
	Modified string   `xml:"modified"`
}
