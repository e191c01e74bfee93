package docx

import "encoding/xml"

// WordprocessingML structures for word/document.xml. Element names carry the
// w: prefix verbatim; the namespace is declared once on the root element.

const wordprocessingmlNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	SectPr     *xmlSectPr     `xml:"w:sectPr,omitempty"`
}

type xmlParagraph struct {
	Props *xmlParaProps `xml:"w:pPr,omitempty"`
	Runs  []xmlRun      `xml:"w:r"`
}

type xmlParaProps struct {
	Style   *xmlVal      `xml:"w:pStyle,omitempty"`
	NumProp *xmlNumProps `xml:"w:numPr,omitempty"`
	Justify *xmlVal      `xml:"w:jc,omitempty"`
}

// xmlNumProps attaches a paragraph to the bullet numbering definition.
type xmlNumProps struct {
	Level xmlVal `xml:"w:ilvl"`
	NumID xmlVal `xml:"w:numId"`
}

type xmlRun struct {
	Props *xmlRunProps `xml:"w:rPr,omitempty"`
	Text  xmlText      `xml:"w:t"`
}

type xmlRunProps struct {
	Bold   *xmlEmpty `xml:"w:b,omitempty"`
	Italic *xmlEmpty `xml:"w:i,omitempty"`
}

type xmlEmpty struct{}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

// xmlText preserves leading/trailing whitespace in run text.
type xmlText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Text  string `xml:",chardata"`
}

// xmlSectPr declares page geometry: US Letter, one-inch margins
// (twentieths of a point: 12240x15840, margin 1440).
type xmlSectPr struct {
	PageSize   xmlPageSize   `xml:"w:pgSz"`
	PageMargin xmlPageMargin `xml:"w:pgMar"`
}

type xmlPageSize struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type xmlPageMargin struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

// defaultSectPr returns the fixed page setup used for CV output.
func defaultSectPr() *xmlSectPr {
	return &xmlSectPr{
		PageSize: xmlPageSize{W: "12240", H: "15840"},
		PageMargin: xmlPageMargin{
			Top: "1440", Right: "1440", Bottom: "1440", Left: "1440",
			Header: "720", Footer: "720", Gutter: "0",
		},
	}
}
