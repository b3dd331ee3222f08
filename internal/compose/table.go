// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/pdiddy/deckgen/pkg/types"
)

const (
	tableHeaderHeight = 0.35
	tableRowHeight    = 0.28
	cellSeparator     = "    │    "
)

// addTable renders one table starting at vertical position y (inches),
// continuing onto follow-up slides when rows run past the per-slide
// budget. It returns the slide and y position where content may resume.
func (d *Deck) addTable(slide *ppt.Slide, folder types.SlideFolder, table types.Table, y, widthIn float64, caption bool) (*ppt.Slide, float64, error) {
	cols := table.Header
	colsTruncated := false
	if max := d.layout.TableMaxColumns; max > 0 && len(cols) > max {
		cols = cols[:max]
		colsTruncated = true
	}

	if caption {
		capShape := slide.CreateRichTextShape()
		capShape.SetOffsetX(marginLeft).SetOffsetY(int64(y * emuPerInch))
		capShape.SetWidth(int64(widthIn * emuPerInch)).SetHeight(int64(0.25 * emuPerInch))
		tr := capShape.CreateTextRun(table.Name)
		tr.GetFont().SetSize(fontSmall).SetBold(true).SetColor(ppt.NewColor(colorMuted))
		y += 0.3
	}

	rowsPerSlide := d.layout.TableRowsPerSlide
	if rowsPerSlide <= 0 {
		rowsPerSlide = 14
	}

	total := len(table.Rows)
	start := 0
	for {
		if y+tableHeaderHeight+tableRowHeight > contentBottom && start < total {
			next, err := d.continuationSlide(folder)
			if err != nil {
				return nil, 0, err
			}
			slide = next
			y = 1.0
		}

		d.tableHeaderRow(slide, cols, y, widthIn)
		y += tableHeaderHeight

		end := start + rowsPerSlide
		if end > total {
			end = total
		}
		// Shrink the page further if the slide is already partly full.
		for end > start && y+float64(end-start)*tableRowHeight > contentBottom {
			end--
		}
		if end == start && start < total {
			// No room at all on this slide; retry on a fresh one.
			next, err := d.continuationSlide(folder)
			if err != nil {
				return nil, 0, err
			}
			slide = next
			y = 1.0
			continue
		}

		for i, row := range table.Rows[start:end] {
			d.tableBodyRow(slide, cols, row, i, y, widthIn)
			y += tableRowHeight
		}
		if total > rowsPerSlide || colsTruncated {
			d.tablePageInfo(slide, start, end, total, colsTruncated)
		}

		start = end
		if start >= total {
			break
		}

		next, err := d.continuationSlide(folder)
		if err != nil {
			return nil, 0, err
		}
		slide = next
		y = 1.0
	}

	d.tables++
	return slide, y + 0.2, nil
}

// tableHeaderRow draws the accent-filled header band.
func (d *Deck) tableHeaderRow(slide *ppt.Slide, cols []string, y, widthIn float64) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(marginLeft).SetOffsetY(int64(y * emuPerInch))
	shape.SetWidth(int64(widthIn * emuPerInch)).SetHeight(int64(tableHeaderHeight * emuPerInch))
	shape.SetFill(solidFill(d.layout.AccentColor))

	tr := shape.CreateTextRun(joinCells(cols, widthIn/float64(len(cols))))
	tr.GetFont().SetSize(fontTableHead).SetBold(true).SetColor(ppt.ColorWhite)
	alignCenter(shape.GetActiveParagraph())
}

// tableBodyRow draws one zebra-striped data row.
func (d *Deck) tableBodyRow(slide *ppt.Slide, cols []string, row []string, idx int, y, widthIn float64) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(marginLeft).SetOffsetY(int64(y * emuPerInch))
	shape.SetWidth(int64(widthIn * emuPerInch)).SetHeight(int64(tableRowHeight * emuPerInch))
	if idx%2 == 0 {
		shape.SetFill(solidFill(colorRowEven))
	} else {
		shape.SetFill(solidFill(colorRowOdd))
	}

	cells := row
	if len(cells) > len(cols) {
		cells = cells[:len(cols)]
	}
	tr := shape.CreateTextRun(joinCells(cells, widthIn/float64(len(cols))))
	tr.GetFont().SetSize(fontTableCell).SetColor(ppt.NewColor(colorInk))
	alignCenter(shape.GetActiveParagraph())
}

// tablePageInfo notes the visible row range bottom-right.
func (d *Deck) tablePageInfo(slide *ppt.Slide, start, end, total int, colsTruncated bool) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(marginLeft).SetOffsetY(int64(5.3 * emuPerInch))
	shape.SetWidth(contentWidth).SetHeight(int64(0.25 * emuPerInch))

	text := fmt.Sprintf("rows %d-%d of %d", start+1, end, total)
	if colsTruncated {
		text += " (columns truncated)"
	}
	tr := shape.CreateTextRun(text)
	tr.GetFont().SetSize(fontFooter).SetColor(ppt.NewColor(colorFaint))
	alignRight(shape.GetActiveParagraph())
}

// joinCells builds the single-run row text, truncating each cell to fit
// its column width.
func joinCells(cells []string, colWidthIn float64) string {
	maxLen := int(colWidthIn * 3.5)
	if maxLen < 12 {
		maxLen = 12
	}

	text := ""
	for i, cell := range cells {
		if i > 0 {
			text += cellSeparator
		}
		runes := []rune(cell)
		if len(runes) > maxLen {
			cell = string(runes[:maxLen-2]) + ".."
		}
		text += cell
	}
	return text
}
