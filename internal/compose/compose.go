// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose builds the in-memory presentation document. Each slide
// folder contributes one content slide (plus continuation slides when a
// table exceeds the per-slide row budget); serialization goes through
// GoPPT's PowerPoint 2007 writer.
package compose

import (
	"bytes"
	"fmt"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Slide geometry for a 16:9 deck, in EMU.
const (
	emuPerInch = 914400

	marginLeft = int64(0.4 * emuPerInch)

	slideWidth    = int64(10.0 * emuPerInch)
	slideHeight   = int64(5.625 * emuPerInch)
	contentWidth  = int64(9.2 * emuPerInch)
	contentBottom = 5.3 // inches; content below this collides with the footer area

	fontSubtitle  = 20
	fontSmall     = 12
	fontTableHead = 11
	fontTableCell = 10
	fontFooter    = 9
)

// Neutral palette shared by all slides; the accent color comes from config.
const (
	colorInk      = "FF334155"
	colorFaint    = "FF94A3B8"
	colorMuted    = "FF64748B"
	colorRowEven  = "FFF8FAFC"
	colorRowOdd   = "FFF1F5F9"
	colorPositive = "FF16A34A"
	colorNegative = "FFDC2626"
)

// Deck wraps the presentation document being accumulated. It is owned by
// a single generation run and mutated by appending one folder at a time.
type Deck struct {
	p      *ppt.Presentation
	layout types.LayoutConfig

	firstUsed bool

	slides int
	tables int
	images int
}

// New creates an empty deck with the given document properties.
func New(title, author string, layout types.LayoutConfig) *Deck {
	p := ppt.New()
	p.GetDocumentProperties().Title = title
	if author != "" {
		p.GetDocumentProperties().Creator = author
	}
	return &Deck{p: p, layout: layout}
}

// Slides returns the number of slides composed so far, continuations
// included.
func (d *Deck) Slides() int { return d.slides }

// Tables returns the number of tables rendered so far.
func (d *Deck) Tables() int { return d.tables }

// Images returns the number of images placed so far.
func (d *Deck) Images() int { return d.images }

// nextSlide returns a fresh slide. GoPPT presentations start with one
// active slide, which the first call claims.
func (d *Deck) nextSlide() *ppt.Slide {
	d.slides++
	if !d.firstUsed {
		d.firstUsed = true
		return d.p.GetActiveSlide()
	}
	return d.p.CreateSlide()
}

// Bytes serializes the deck as a .pptx archive.
func (d *Deck) Bytes() ([]byte, error) {
	w, err := ppt.NewWriter(d.p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("%w: creating pptx writer: %v", types.ErrOutput, err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: serializing deck: %v", types.ErrOutput, err)
	}
	return buf.Bytes(), nil
}

// AddCover prepends a cover slide: accent bars, centered title and
// subtitle, and the generation timestamp.
func (d *Deck) AddCover(title, subtitle string) {
	slide := d.nextSlide()

	d.accentBar(slide, 0, 0.15)
	d.accentBar(slide, 5.5, 0.125)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(1.6 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(1.0 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(d.layout.TitleFontSize).SetBold(true).SetColor(ppt.NewColor(d.layout.AccentColor))
	alignCenter(titleShape.GetActiveParagraph())

	if subtitle != "" {
		subShape := slide.CreateRichTextShape()
		subShape.SetOffsetX(int64(1.0 * emuPerInch)).SetOffsetY(int64(2.8 * emuPerInch))
		subShape.SetWidth(int64(8.0 * emuPerInch)).SetHeight(int64(0.8 * emuPerInch))
		subTr := subShape.CreateTextRun(subtitle)
		subTr.GetFont().SetSize(fontSubtitle).SetColor(ppt.NewColor(colorMuted))
		alignCenter(subShape.GetActiveParagraph())
	}

	tsShape := slide.CreateRichTextShape()
	tsShape.SetOffsetX(marginLeft).SetOffsetY(int64(4.2 * emuPerInch))
	tsShape.SetWidth(contentWidth).SetHeight(int64(0.4 * emuPerInch))
	tsTr := tsShape.CreateTextRun(time.Now().Format("January 2, 2006"))
	tsTr.GetFont().SetSize(fontSmall).SetColor(ppt.NewColor(colorFaint))
	alignCenter(tsShape.GetActiveParagraph())
}

// AddClosing appends a closing slide.
func (d *Deck) AddClosing() {
	slide := d.nextSlide()

	d.accentBar(slide, 0, 0.15)
	d.accentBar(slide, 5.5, 0.125)

	thanks := slide.CreateRichTextShape()
	thanks.SetOffsetX(int64(1.0 * emuPerInch)).SetOffsetY(int64(2.2 * emuPerInch))
	thanks.SetWidth(int64(8.0 * emuPerInch)).SetHeight(int64(1.0 * emuPerInch))
	tr := thanks.CreateTextRun("Thank you")
	tr.GetFont().SetSize(d.layout.TitleFontSize).SetBold(true).SetColor(ppt.NewColor(d.layout.AccentColor))
	alignCenter(thanks.GetActiveParagraph())
}

// AddFolder appends the content slide for one slide folder. Tables were
// already parsed by the caller so the reader and parsing failures stay
// ahead of any document mutation.
func (d *Deck) AddFolder(folder types.SlideFolder, tables []types.Table) error {
	slide, err := d.newContentSlide(folder, folder.Title())
	if err != nil {
		return err
	}

	// Notes occupy a right-hand column; everything else narrows to fit.
	bodyWidth := 9.2
	if len(folder.Notes) > 0 {
		bodyWidth = 5.8
		d.addNotes(slide, folder.Notes)
	}

	y := 1.0
	if folder.Meta.Subtitle != "" {
		d.addSubtitle(slide, folder.Meta.Subtitle)
		y = 1.3
	}

	for _, table := range tables {
		slide, y, err = d.addTable(slide, folder, table, y, bodyWidth, len(tables) > 1)
		if err != nil {
			return err
		}
	}

	slide, err = d.addImages(slide, folder, y, bodyWidth)
	if err != nil {
		return err
	}

	if folder.Hints.Logo != "" {
		if err := d.addLogo(slide, folder); err != nil {
			return err
		}
	}
	return nil
}

// newContentSlide creates a slide with the folder's background hint (if
// any) behind an accent bar and heading.
func (d *Deck) newContentSlide(folder types.SlideFolder, title string) (*ppt.Slide, error) {
	slide := d.nextSlide()

	if folder.Hints.Background != "" {
		if err := d.addBackground(slide, folder); err != nil {
			return nil, err
		}
	}

	d.accentBar(slide, 0, 0.08)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(0.3 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(0.6 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(d.layout.HeadingFontSize).SetBold(true).SetColor(ppt.NewColor(d.layout.AccentColor))

	return slide, nil
}

// continuationSlide starts a follow-up slide when a folder's content
// overflows: same heading with a continuation marker.
func (d *Deck) continuationSlide(folder types.SlideFolder) (*ppt.Slide, error) {
	return d.newContentSlide(folder, folder.Title()+" (cont.)")
}

// addSubtitle places the meta subtitle directly under the heading.
func (d *Deck) addSubtitle(slide *ppt.Slide, subtitle string) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(marginLeft).SetOffsetY(int64(0.95 * emuPerInch))
	shape.SetWidth(contentWidth).SetHeight(int64(0.3 * emuPerInch))
	tr := shape.CreateTextRun(subtitle)
	tr.GetFont().SetSize(fontSmall).SetColor(ppt.NewColor(colorMuted))
}

// accentBar draws a full-width decorative bar at the given vertical
// position (inches).
func (d *Deck) accentBar(slide *ppt.Slide, top, height float64) {
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(0).SetOffsetY(int64(top * emuPerInch))
	bar.SetWidth(slideWidth).SetHeight(int64(height * emuPerInch))
	bar.SetFill(solidFill(d.layout.AccentColor))
}

// solidFill creates a solid fill from an ARGB string.
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// alignCenter centers a paragraph horizontally.
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// alignRight right-aligns a paragraph.
func alignRight(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}
