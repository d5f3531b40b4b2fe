package alpha_abbrev

import "strings"

type SegmentKind uint8

const (
	Literal SegmentKind = iota
	Skip
)

func (kind SegmentKind) String() string {
	switch kind {
	case Literal:
		return "literal"
	case Skip:
		return "skip"
	}
	return "unknown"
}

// Segment is one abbreviation token and the word letters it consumed.
type Segment struct {
	Kind  SegmentKind `json:"kind" msgpack:"kind"`
	Token byte        `json:"token" msgpack:"token"`
	Span  string      `json:"span" msgpack:"span"`
}

type Segments []Segment

// Explain
// Decodes `abbr` against `word` and returns the tokens in the order they were
// consumed. It accepts exactly what IsValidAbbreviation accepts; on rejection
// the returned Segments are nil.
func Explain(word, abbr string) (Segments, bool) {
	if !isWord(word) || !isAbbreviation(abbr) {
		return nil, false
	}
	segments := make(Segments, 0, len(abbr))
	if !scan(word, abbr, func(s Segment) {
		segments = append(segments, s)
	}) {
		return nil, false
	}
	return segments, true
}

// Word reassembles the letters covered by the segments.
func (segments Segments) Word() string {
	var b strings.Builder
	for idx := range segments {
		b.WriteString(segments[idx].Span)
	}
	return b.String()
}

// Abbreviation reassembles the tokens of the segments.
func (segments Segments) Abbreviation() string {
	b := make([]byte, len(segments))
	for idx := range segments {
		b[idx] = segments[idx].Token
	}
	return string(b)
}

// String renders literals as-is and skipped runs in brackets, so that
// `internationalization` under `imzdn` reads `i[nternationali]z[atio]n`.
func (segments Segments) String() string {
	var b strings.Builder
	for _, segment := range segments {
		if segment.Kind == Skip {
			b.WriteByte('[')
			b.WriteString(segment.Span)
			b.WriteByte(']')
		} else {
			b.WriteString(segment.Span)
		}
	}
	return b.String()
}
