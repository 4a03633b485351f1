// Provides the in-memory model of SVG documents: a flat
// sequence of elements, each holding its raw attributes.
// Typed interpretation of the attributes is left to the
// consumers (see svgattr and svgraster).
package svgelem

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Extension is the only file extension accepted by FileDeserializer.
const Extension = ".svg"

var (
	ErrNotFound      = errors.New("svg source does not exist")
	ErrNotRegular    = errors.New("svg source is not a regular file")
	ErrExtension     = errors.New("svg source must have the " + Extension + " extension")
	ErrEmptyDocument = errors.New("invalid svg document: no element found")
)

// Deserializer produces the element sequence of a document.
type Deserializer interface {
	Deserialize() ([]*Element, error)
}

var _ Deserializer = FileDeserializer{} // assert interface conformance

// FileDeserializer reads an .svg file from disk.
type FileDeserializer struct {
	Path string
}

// Deserialize checks that the file exists, is a regular .svg file
// and is well-formed XML, then returns its elements in
// document order. No element is returned on failure.
func (fd FileDeserializer) Deserialize() ([]*Element, error) {
	info, err := os.Stat(fd.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", fd.Path)
		}
		return nil, errors.Wrapf(err, "can't stat %s", fd.Path)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Wrapf(ErrNotRegular, "%s", fd.Path)
	}
	if !strings.EqualFold(filepath.Ext(fd.Path), Extension) {
		return nil, errors.Wrapf(ErrExtension, "%s", fd.Path)
	}
	return ReadElements(fd.Path)
}

// ReadElements reads the elements from the named file.
func ReadElements(file string) ([]*Element, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "can't open svg source")
	}
	defer fin.Close()
	elements, err := ReadElementsStream(fin)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid svg document %s", file)
	}
	return elements, nil
}

// ReadElementsStream decodes the whole document from `stream`
// and flattens it, depth first. Namespace prefixes are dropped
// from tag and attribute names, and namespace declarations are
// not kept as attributes.
func ReadElementsStream(stream io.Reader) ([]*Element, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var elements []*Element
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		elements = append(elements, newElementFromXML(se))
	}
	if len(elements) == 0 {
		return nil, ErrEmptyDocument
	}
	return elements, nil
}

func newElementFromXML(se xml.StartElement) *Element {
	e := NewElement(se.Name.Local)
	for _, attr := range se.Attr {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		e.AddAttribute(Attribute{Name: attr.Name.Local, Value: attr.Value})
	}
	return e
}
