// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Registered for image.DecodeConfig; placement needs pixel dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/pdiddy/deckgen/pkg/types"
)

const (
	// imageDPI maps pixel sizes to inches for natural-size placement.
	imageDPI = 96.0

	imageGapIn     = 0.2
	logoMaxWidthIn = 1.2
	logoMarginIn   = 0.2
)

// slideImage is a decoded image ready for placement.
type slideImage struct {
	data     []byte
	mime     string
	widthIn  float64
	heightIn float64
}

// loadImage reads an image file and probes its pixel dimensions. A file
// with a recognized extension that does not decode is malformed input.
func loadImage(path string) (slideImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return slideImage{}, fmt.Errorf("%w: reading %s: %v", types.ErrMalformedData, path, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return slideImage{}, fmt.Errorf("%w: decoding %s: %v", types.ErrMalformedData, path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return slideImage{}, fmt.Errorf("%w: %s has empty dimensions", types.ErrMalformedData, path)
	}

	return slideImage{
		data:     data,
		mime:     mimeForExt(path),
		widthIn:  float64(cfg.Width) / imageDPI,
		heightIn: float64(cfg.Height) / imageDPI,
	}, nil
}

func mimeForExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}

// addImages stacks the folder's regular images below y, scaled to natural
// 96 DPI size and capped at the configured max width. Images that would
// run past the content area continue on a follow-up slide.
func (d *Deck) addImages(slide *ppt.Slide, folder types.SlideFolder, y, widthIn float64) (*ppt.Slide, error) {
	maxWidth := d.layout.ImageMaxWidthInches
	if folder.Hints.ImageMaxWidthInches > 0 {
		maxWidth = folder.Hints.ImageMaxWidthInches
	}
	if maxWidth <= 0 || maxWidth > widthIn {
		maxWidth = widthIn
	}

	for _, path := range folder.ImageFiles {
		img, err := loadImage(path)
		if err != nil {
			return nil, err
		}

		scale := 1.0
		if img.widthIn > maxWidth {
			scale = maxWidth / img.widthIn
		}
		w := img.widthIn * scale
		h := img.heightIn * scale

		if y+h > contentBottom && y > 1.0 {
			next, err := d.continuationSlide(folder)
			if err != nil {
				return nil, err
			}
			slide = next
			y = 1.0
		}

		shape := slide.CreateDrawingShape()
		shape.SetImageData(img.data, img.mime)
		shape.SetOffsetX(marginLeft).SetOffsetY(int64(y * emuPerInch))
		shape.SetWidth(int64(w * emuPerInch)).SetHeight(int64(h * emuPerInch))

		y += h + imageGapIn
		d.images++
	}
	return slide, nil
}

// addBackground stretches the hinted background image across the slide.
func (d *Deck) addBackground(slide *ppt.Slide, folder types.SlideFolder) error {
	img, err := loadImage(filepath.Join(folder.Path, folder.Hints.Background))
	if err != nil {
		return err
	}

	shape := slide.CreateDrawingShape()
	shape.SetImageData(img.data, img.mime)
	shape.SetOffsetX(0).SetOffsetY(0)
	shape.SetWidth(slideWidth).SetHeight(slideHeight)
	return nil
}

// addLogo places the hinted logo bottom-right at natural size, capped.
func (d *Deck) addLogo(slide *ppt.Slide, folder types.SlideFolder) error {
	img, err := loadImage(filepath.Join(folder.Path, folder.Hints.Logo))
	if err != nil {
		return err
	}

	scale := 1.0
	if img.widthIn > logoMaxWidthIn {
		scale = logoMaxWidthIn / img.widthIn
	}
	w := img.widthIn * scale
	h := img.heightIn * scale

	shape := slide.CreateDrawingShape()
	shape.SetImageData(img.data, img.mime)
	shape.SetOffsetX(slideWidth - int64((w+logoMarginIn)*emuPerInch))
	shape.SetOffsetY(slideHeight - int64((h+logoMarginIn)*emuPerInch))
	shape.SetWidth(int64(w * emuPerInch)).SetHeight(int64(h * emuPerInch))
	return nil
}
