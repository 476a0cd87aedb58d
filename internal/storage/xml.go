// Package storage reads and writes drawings as XML documents.
//
// A document has an ArrayOfBrokenLine root holding one BrokenLine element
// per shape. The writer produces a fixed layout (CRLF line breaks, two-space
// indentation, self-closing empty elements) so that files stay identical to
// the ones earlier versions saved.
package storage

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html/charset"

	"DrawShape/internal/geom"
	"DrawShape/internal/logging"
	"DrawShape/internal/state"
)

// ErrFormat reports a document that does not follow the schema.
var ErrFormat = errors.New("malformed drawing file")

const (
	newline   = "\r\n"
	xmlHeader = `<?xml version="1.0"?>`
	rootName  = "ArrayOfBrokenLine"
	rootAttrs = ` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema"`
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Encode writes shapes to w.
func Encode(w io.Writer, shapes []state.BrokenLine) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(xmlHeader)
	bw.WriteString(newline)
	if len(shapes) == 0 {
		bw.WriteString("<" + rootName + rootAttrs + " />")
		return bw.Flush()
	}
	bw.WriteString("<" + rootName + rootAttrs + ">")
	for _, l := range shapes {
		fmt.Fprintf(bw, "%s  <BrokenLine Name=\"%s\">", newline, escapeAttr(l.Name))
		fmt.Fprintf(bw, "%s    <ColorBorder R=\"%d\" G=\"%d\" B=\"%d\" />", newline, l.Border.R, l.Border.G, l.Border.B)
		if len(l.Points) == 0 {
			if l.Points != nil {
				bw.WriteString(newline + "    <Points />")
			}
		} else {
			bw.WriteString(newline + "    <Points>")
			for _, p := range l.Points {
				fmt.Fprintf(bw, "%s      <Point X=\"%s\" Y=\"%s\" />", newline, formatFloat(p.X), formatFloat(p.Y))
			}
			bw.WriteString(newline + "    </Points>")
		}
		bw.WriteString(newline + "  </BrokenLine>")
	}
	bw.WriteString(newline + "</" + rootName + ">")
	return bw.Flush()
}

// Save writes shapes to the file at path, replacing any existing file. The
// document goes to a temporary file in the same directory first and is
// renamed over path only once it is complete.
func Save(path string, shapes []state.BrokenLine) (err error) {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()
	if err = Encode(f, shapes); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	logging.Logger().Debug("drawing written", "path", path, "shapes", len(shapes))
	return nil
}

type xmlDocument struct {
	XMLName xml.Name        `xml:"ArrayOfBrokenLine"`
	Lines   []xmlBrokenLine `xml:"BrokenLine"`
}

type xmlBrokenLine struct {
	Name   string     `xml:"Name,attr"`
	Border *xmlColor  `xml:"ColorBorder"`
	Points *xmlPoints `xml:"Points"`
}

type xmlColor struct {
	R string `xml:"R,attr"`
	G string `xml:"G,attr"`
	B string `xml:"B,attr"`
}

type xmlPoints struct {
	Points []xmlPoint `xml:"Point"`
}

type xmlPoint struct {
	X string `xml:"X,attr"`
	Y string `xml:"Y,attr"`
}

// Decode reads a document from r. Shape order and vertex order are kept.
// Any deviation from the schema is reported as ErrFormat.
func Decode(r io.Reader) ([]state.BrokenLine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	dec.CharsetReader = charset.NewReaderLabel
	var doc xmlDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if err := checkTrailer(dec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	shapes := make([]state.BrokenLine, 0, len(doc.Lines))
	for i, xl := range doc.Lines {
		l, err := xl.brokenLine()
		if err != nil {
			return nil, fmt.Errorf("%w: broken line %d: %v", ErrFormat, i+1, err)
		}
		shapes = append(shapes, l)
	}
	return shapes, nil
}

// checkTrailer consumes what follows the root element. Only whitespace,
// comments and processing instructions may appear there.
func checkTrailer(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("text %q after the root element", bytes.TrimSpace(t))
			}
		default:
			return fmt.Errorf("unexpected %T after the root element", tok)
		}
	}
}

// Load reads the document stored at path.
func Load(path string) ([]state.BrokenLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()
	shapes, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logging.Logger().Debug("drawing read", "path", path, "shapes", len(shapes))
	return shapes, nil
}

func (xl xmlBrokenLine) brokenLine() (state.BrokenLine, error) {
	l := state.BrokenLine{Name: xl.Name}
	if xl.Border == nil {
		return l, errors.New("no ColorBorder element")
	}
	var err error
	if l.Border.R, err = parseChannel("R", xl.Border.R); err != nil {
		return l, err
	}
	if l.Border.G, err = parseChannel("G", xl.Border.G); err != nil {
		return l, err
	}
	if l.Border.B, err = parseChannel("B", xl.Border.B); err != nil {
		return l, err
	}
	if xl.Points == nil {
		return l, nil
	}
	l.Points = make([]geom.Point, 0, len(xl.Points.Points))
	for j, xp := range xl.Points.Points {
		x, err := parseFloat(xp.X)
		if err != nil {
			return l, fmt.Errorf("point %d X: %v", j+1, err)
		}
		y, err := parseFloat(xp.Y)
		if err != nil {
			return l, fmt.Errorf("point %d Y: %v", j+1, err)
		}
		l.Points = append(l.Points, geom.Pt(x, y))
	}
	return l, nil
}

func parseChannel(name, s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("colour channel %s=%q is not an integer in 0..255", name, s)
	}
	return uint8(v), nil
}


