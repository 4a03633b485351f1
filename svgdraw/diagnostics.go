package svgdraw

import (
	"fmt"
	"log"
	"strings"

	"github.com/benoitkugler/svgpng/svgelem"
)

// ErrorMode sets how the drawing reacts to
// unsupported elements and invalid attributes.
// In every mode, the problem is recorded in the Diagnostics
// and the drawing goes on.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode             // also logs each problem
)

// Diagnostics collects the non fatal problems met while
// converting a document.
type Diagnostics struct {
	Warnings    []string // invalid attributes, drawing and encoding problems
	Unsupported []string // tag names of the skipped elements
}

// Len returns the number of problems.
func (d Diagnostics) Len() int { return len(d.Warnings) + len(d.Unsupported) }

// Empty returns true if no problem was found.
func (d Diagnostics) Empty() bool { return d.Len() == 0 }

func (d Diagnostics) String() string {
	if d.Empty() {
		return "no warning"
	}
	var chunks []string
	if len(d.Warnings) != 0 {
		chunks = append(chunks, fmt.Sprintf("%d warning(s)", len(d.Warnings)))
	}
	if len(d.Unsupported) != 0 {
		chunks = append(chunks, fmt.Sprintf("%d unsupported element(s): %s",
			len(d.Unsupported), strings.Join(d.Unsupported, ", ")))
	}
	return strings.Join(chunks, ", ")
}

func (d *Diagnostics) warn(mode ErrorMode, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	d.Warnings = append(d.Warnings, msg)
	if mode == WarnErrorMode {
		log.Println(msg)
	}
}

func (d *Diagnostics) unsupported(mode ErrorMode, tag string) {
	d.Unsupported = append(d.Unsupported, tag)
	if mode == WarnErrorMode {
		log.Println("Cannot process svg element " + tag)
	}
}

// Warn records a problem, logged in WarnErrorMode.
func (d *Diagnostics) Warn(mode ErrorMode, err error) {
	d.warn(mode, "%s", err)
}

// Converter consumes an element sequence and emits an encoded output.
// The returned error is only used for output failures:
// problems with the elements are reported in the Diagnostics.
type Converter interface {
	Convert(elements []*svgelem.Element) (Diagnostics, error)
}
