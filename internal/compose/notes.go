// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

const notesWrapWidth = 38

// addNotes renders the folder's notes lines in a right-hand column.
// Lines use a small markdown subset: #-headings, - or * bullets, and
// **bold** markers (stripped). A trailing signed delta like "(+12%)"
// colors the line green or red.
func (d *Deck) addNotes(slide *ppt.Slide, notes []string) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(int64(6.4 * emuPerInch)).SetOffsetY(int64(1.0 * emuPerInch))
	shape.SetWidth(int64(3.2 * emuPerInch)).SetHeight(int64(4.1 * emuPerInch))

	bodySize := d.layout.BodyFontSize
	if bodySize <= 0 {
		bodySize = fontSmall
	}

	first := true
	for _, line := range notes {
		format := parseNoteLine(line)
		for _, wrapped := range wrapText(format.text, notesWrapWidth) {
			if !first {
				shape.CreateParagraph()
			}
			first = false

			tr := shape.CreateTextRun(wrapped)
			switch {
			case format.heading == 1:
				tr.GetFont().SetSize(16).SetBold(true).SetColor(ppt.NewColor(d.layout.AccentColor))
			case format.heading >= 2:
				tr.GetFont().SetSize(fontSmall + 2).SetBold(true).SetColor(ppt.NewColor(colorInk))
			default:
				tr.GetFont().SetSize(bodySize).SetColor(ppt.NewColor(noteColor(format.text)))
			}
		}
	}
}

// noteLineFormat is the parsed shape of one notes line.
type noteLineFormat struct {
	text    string
	heading int
	isList  bool
}

// parseNoteLine strips markdown markers and classifies the line.
func parseNoteLine(line string) noteLineFormat {
	result := noteLineFormat{text: line}

	for level := 4; level >= 1; level-- {
		prefix := strings.Repeat("#", level) + " "
		if strings.HasPrefix(line, prefix) {
			result.heading = level
			result.text = strings.TrimPrefix(line, prefix)
			break
		}
	}

	if result.heading == 0 {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			result.isList = true
			result.text = "• " + strings.TrimPrefix(strings.TrimPrefix(trimmed, "- "), "* ")
		}
	}

	result.text = stripBoldMarkers(result.text)
	return result
}

// stripBoldMarkers removes paired ** and __ markers.
func stripBoldMarkers(text string) string {
	for _, marker := range []string{"**", "__"} {
		for strings.Contains(text, marker) {
			start := strings.Index(text, marker)
			end := strings.Index(text[start+2:], marker)
			if end == -1 {
				break
			}
			text = text[:start] + text[start+2:start+2+end] + text[start+2+end+2:]
		}
	}
	return text
}

// noteColor picks a color from the line's trailing delta token, so notes
// like "EMEA up vs target (+4.2%)" read green and misses read red.
func noteColor(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return colorInk
	}
	last := strings.Trim(fields[len(fields)-1], "()%,.")
	switch {
	case strings.HasPrefix(last, "+"):
		return colorPositive
	case strings.HasPrefix(last, "-") || strings.HasPrefix(last, "−"):
		return colorNegative
	default:
		return colorInk
	}
}

// wrapText breaks text into lines of at most maxLen runes, preferring to
// break at spaces past the halfway point.
func wrapText(text string, maxLen int) []string {
	if len(text) == 0 {
		return []string{""}
	}

	var lines []string
	runes := []rune(text)
	for len(runes) > 0 {
		if len(runes) <= maxLen {
			lines = append(lines, string(runes))
			break
		}

		breakPoint := maxLen
		for i := maxLen; i > maxLen/2; i-- {
			if runes[i] == ' ' {
				breakPoint = i + 1
				break
			}
		}

		lines = append(lines, strings.TrimRight(string(runes[:breakPoint]), " "))
		runes = runes[breakPoint:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	return lines
}
