package chat

import (
	"regexp"
	"strings"
)

// The agent decorates extracted promotion fields with marker emoji, one field
// per line ("✅ Título: Campanha de Verão"). Lines matching this pattern are
// rendered as discrete field rows, everything else as prose.
var fieldPattern = regexp.MustCompile(`(?m)^([✅📌🎯📝👥📅✨💰🎁📦]+)[ \t]*([^:\n]+):[ \t]*(.+)$`)

type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentField
)

// Segment is one piece of a formatted agent reply, in document order.
type Segment struct {
	Kind SegmentKind

	// Text, for SegmentText.
	Text string

	// Icon, Label, Value, for SegmentField.
	Icon  string
	Label string
	Value string
}

// ParseSegments splits an agent reply into plain-text and structured-field
// segments. Pure: same input, same output. Inter-field text that is all
// whitespace is dropped; with no field lines at all the whole reply comes
// back as a single text segment.
func ParseSegments(content string) []Segment {
	matches := fieldPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: SegmentText, Text: content}}
	}

	var segments []Segment
	last := 0
	for _, m := range matches {
		if m[0] > last {
			if before := content[last:m[0]]; strings.TrimSpace(before) != "" {
				segments = append(segments, Segment{Kind: SegmentText, Text: before})
			}
		}
		segments = append(segments, Segment{
			Kind:  SegmentField,
			Icon:  content[m[2]:m[3]],
			Label: strings.TrimSpace(content[m[4]:m[5]]),
			Value: strings.TrimSpace(content[m[6]:m[7]]),
		})
		last = m[1]
	}
	if last < len(content) {
		if after := content[last:]; strings.TrimSpace(after) != "" {
			segments = append(segments, Segment{Kind: SegmentText, Text: after})
		}
	}
	return segments
}
