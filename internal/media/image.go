package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const avatarMaxSide = 512

// EncodeAvatar decodes an uploaded JPEG/PNG, downscales it so the longest
// side is at most 512px, and re-encodes as WebP.
func EncodeAvatar(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > avatarMaxSide || h > avatarMaxSide {
		scale := float64(avatarMaxSide) / float64(w)
		if h > w {
			scale = float64(avatarMaxSide) / float64(h)
		}
		nw := int(float64(w) * scale)
		nh := int(float64(h) * scale)

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}
