// Package document rewrites the benchmark region of a text document.
//
// The region is delimited by StartMarker and EndMarker. Everything between
// them belongs to benchdoc; everything outside is left byte-for-byte intact.
package document

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StartMarker = "<!-- BENCHMARK_TABLE_START -->"
	EndMarker   = "<!-- BENCHMARK_TABLE_END -->"
)

const (
	leadingPad  = "\n\n"
	trailingPad = "\n"
)

// ErrMissingMarker is matched by every *MarkerError.
var ErrMissingMarker = errors.New("benchmark table marker not found")

// MarkerError names the marker that could not be located.
type MarkerError struct {
	Marker string
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingMarker, e.Marker)
}

func (e *MarkerError) Unwrap() error {
	return ErrMissingMarker
}

// locate returns the bounds of the region body: the first start marker and
// the first end marker after it.
func locate(doc string) (bodyStart, bodyEnd int, err error) {
	start := strings.Index(doc, StartMarker)
	if start == -1 {
		return 0, 0, &MarkerError{Marker: StartMarker}
	}
	bodyStart = start + len(StartMarker)

	end := strings.Index(doc[bodyStart:], EndMarker)
	if end == -1 {
		return 0, 0, &MarkerError{Marker: EndMarker}
	}
	return bodyStart, bodyStart + end, nil
}

// HasMarkers reports whether doc carries a well-formed marked region.
func HasMarkers(doc string) bool {
	_, _, err := locate(doc)
	return err == nil
}

// Replace returns doc with the marked region replaced by table. When a marker
// is missing it returns doc unchanged together with a *MarkerError.
func Replace(doc, table string) (string, error) {
	bodyStart, bodyEnd, err := locate(doc)
	if err != nil {
		return doc, err
	}

	var sb strings.Builder
	sb.Grow(len(doc) - (bodyEnd - bodyStart) + len(table) + len(leadingPad) + len(trailingPad))
	sb.WriteString(doc[:bodyStart])
	sb.WriteString(leadingPad)
	sb.WriteString(table)
	sb.WriteString(trailingPad)
	sb.WriteString(doc[bodyEnd:])
	return sb.String(), nil
}

// Extract returns the table currently held in the marked region, without the
// padding Replace adds around it.
func Extract(doc string) (string, error) {
	bodyStart, bodyEnd, err := locate(doc)
	if err != nil {
		return "", err
	}
	body := doc[bodyStart:bodyEnd]
	body = strings.TrimPrefix(body, leadingPad)
	body = strings.TrimSuffix(body, trailingPad)
	return body, nil
}
