// Package docconv converts .docx documents into the minimal HTML the
// extraction engine consumes: tables become <table>/<tr>/<td> markup,
// paragraphs outside tables become <p> blocks. A .docx file is a zip
// archive whose main part is word/document.xml; only text and table
// structure are read, all formatting is ignored.
package docconv

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
)

// ErrNotDocx is returned when the payload is not a readable .docx archive.
var ErrNotDocx = errors.New("not a docx archive")

const documentPart = "word/document.xml"

// DocxToHTML renders the document body of a .docx payload as HTML.
func DocxToHTML(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("%w: missing %s", ErrNotDocx, documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", documentPart, err)
	}
	defer rc.Close()

	body, err := renderBody(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", documentPart, err)
	}
	return "<html><body>\n" + body + "</body></html>", nil
}

// renderBody walks the WordprocessingML token stream. Tracked elements:
// w:tbl, w:tr, w:tc for table structure, w:p for paragraphs, w:t for
// text runs, w:tab and w:br for whitespace. Text is only collected from
// inside w:t runs so property elements never leak into the output.
func renderBody(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var out strings.Builder
	var cell strings.Builder
	var para strings.Builder
	tableDepth := 0
	inCell := false
	inTextRun := false

	current := func() *strings.Builder {
		if inCell {
			return &cell
		}
		return &para
	}

	flushPara := func() {
		if text := strings.TrimSpace(para.String()); text != "" {
			out.WriteString("<p>" + html.EscapeString(text) + "</p>\n")
		}
		para.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				// Nested tables flatten into the outer one.
				if tableDepth == 0 {
					flushPara()
					out.WriteString("<table>\n")
				}
				tableDepth++
			case "tr":
				if tableDepth > 0 {
					out.WriteString("<tr>")
				}
			case "tc":
				if tableDepth > 0 {
					inCell = true
					cell.Reset()
				}
			case "t":
				inTextRun = true
			case "tab":
				current().WriteString(" ")
			case "br":
				current().WriteString(" ")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth--
				if tableDepth == 0 {
					out.WriteString("</table>\n")
				}
			case "tr":
				if tableDepth > 0 {
					out.WriteString("</tr>\n")
				}
			case "tc":
				if inCell {
					out.WriteString("<td>" + html.EscapeString(strings.TrimSpace(cell.String())) + "</td>")
					inCell = false
				}
			case "p":
				if inCell {
					cell.WriteString(" ")
				} else if tableDepth == 0 {
					flushPara()
				}
			case "t":
				inTextRun = false
			}
		case xml.CharData:
			if inTextRun {
				current().Write(t)
			}
		}
	}

	flushPara()
	return out.String(), nil
}
