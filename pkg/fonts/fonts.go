// Package fonts provides the embedded Go fonts used for label text.
//
// The TTF data comes from golang.org/x/image/font/gofont, so no font files
// need to be installed. SVG output embeds the regular face as a base64
// @font-face; PNG output rasterizes text with opentype faces built here.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name for the embedded regular face.
const FontFamily = "Go"

// FallbackFontFamily provides fallback fonts for viewers that ignore the
// embedded font.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

var (
	regularBase64     string
	regularBase64Once sync.Once
)

// RegularBase64 returns the regular TTF data as a base64 string.
// The result is cached after first computation.
func RegularBase64() string {
	regularBase64Once.Do(func() {
		regularBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return regularBase64
}

var (
	parseOnce     sync.Once
	regular, bold *opentype.Font
	parseErr      error

	facesMu sync.Mutex
	faces   = map[faceKey]font.Face{}
)

type faceKey struct {
	size float64
	bold bool
}

func parse() error {
	parseOnce.Do(func() {
		if regular, parseErr = opentype.Parse(goregular.TTF); parseErr != nil {
			return
		}
		bold, parseErr = opentype.Parse(gobold.TTF)
	})
	return parseErr
}

// Face returns a face of the given pixel size at 72 DPI. Faces are cached
// and shared; a face must not be used from multiple goroutines at once,
// so concurrent renderers draw text under their own lock.
func Face(size float64, isBold bool) (font.Face, error) {
	if err := parse(); err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	key := faceKey{size: size, bold: isBold}
	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[key]; ok {
		return f, nil
	}

	src := regular
	if isBold {
		src = bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	faces[key] = f
	return f, nil
}
