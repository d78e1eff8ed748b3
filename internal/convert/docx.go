// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// documentXML is the archive member holding the WordprocessingML body.
const documentXML = "word/document.xml"

// WordConverter converts DOCX files. A DOCX is a ZIP archive; the text
// lives in word/document.xml.
type WordConverter struct{}

// Convert extracts the document body and renders it as Markdown:
// Heading1..Heading9 paragraph styles become #-headings, numbered
// paragraphs become list items, everything else a plain paragraph.
func (c *WordConverter) Convert(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", &ConversionError{Path: path, Err: fmt.Errorf("opening archive: %w", err)}
	}
	defer zr.Close()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == documentXML {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", &ConversionError{Path: path, Err: errors.New("no " + documentXML + " in archive")}
	}

	rc, err := doc.Open()
	if err != nil {
		return "", &ConversionError{Path: path, Err: fmt.Errorf("opening %s: %w", documentXML, err)}
	}
	defer rc.Close()

	md, err := wordBodyToMarkdown(rc)
	if err != nil {
		return "", &ConversionError{Path: path, Err: err}
	}
	return md, nil
}

// wordBodyToMarkdown streams the WordprocessingML tokens and emits
// Markdown paragraph by paragraph. Element names are matched on the
// local part only; the w: namespace prefix is irrelevant to us.
func wordBodyToMarkdown(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		out    strings.Builder
		para   strings.Builder
		style  string
		isItem bool
		inList bool
	)

	flush := func() {
		text := strings.TrimSpace(para.String())
		para.Reset()
		if text == "" {
			return
		}
		switch {
		case isItem:
			out.WriteString("- " + text + "\n")
			inList = true
		case strings.HasPrefix(style, "Heading"):
			if inList {
				out.WriteString("\n")
				inList = false
			}
			out.WriteString(strings.Repeat("#", headingLevel(style)) + " " + text + "\n\n")
		default:
			if inList {
				out.WriteString("\n")
				inList = false
			}
			out.WriteString(text + "\n\n")
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parsing %s: %w", documentXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				para.Reset()
				style = ""
				isItem = false
			case "pStyle":
				for _, a := range t.Attr {
					if a.Name.Local == "val" {
						style = a.Value
					}
				}
			case "numPr":
				isItem = true
			case "tab":
				para.WriteByte('\t')
			case "br":
				para.WriteByte(' ')
			case "t":
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return "", fmt.Errorf("parsing %s: %w", documentXML, err)
				}
				para.WriteString(text)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				flush()
			}
		}
	}

	body := strings.TrimRight(out.String(), "\n")
	if body == "" {
		return "", nil
	}
	return body + "\n", nil
}

// headingLevel maps a HeadingN style to a Markdown level, clamped to 1..6.
func headingLevel(style string) int {
	n := 0
	for _, r := range style[len("Heading"):] {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	if n < 1 {
		return 1
	}
	if n > 6 {
		return 6
	}
	return n
}
