package poster

import (
	"math/rand"

	"github.com/fogleman/gg"
)

// drawCorporate: üst bant + beyaz gövde, ızgara dokulu kurumsal düzen.
func drawCorporate(dc *gg.Context, size CanvasSize, scale float64, text TextFields, style Style, rng *rand.Rand) {
	w := float64(size.Width)
	h := float64(size.Height)
	bandH := h * 0.46

	fillBase(dc, w, h, style, func() {
		dc.SetColor(HexToRGBA("#ffffff", 1))
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	})

	grad := gg.NewLinearGradient(0, 0, w, bandH)
	grad.AddColorStop(0, HexToRGBA(style.SecondaryColor, 1))
	grad.AddColorStop(1, HexToRGBA(AdjustBrightness(style.SecondaryColor, -45), 1))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, bandH)
	dc.Fill()

	if style.ShowDecorations {
		// Bant üzerinde sabit aralıklı ızgara çizgileri
		dc.SetColor(HexToRGBA("#ffffff", 0.07))
		dc.SetLineWidth(1 * scale)
		for x := 0.0; x < w; x += 90 * scale {
			dc.DrawLine(x, 0, x, bandH)
			dc.Stroke()
		}
		for y := 0.0; y < bandH; y += 90 * scale {
			dc.DrawLine(0, y, w, y)
			dc.Stroke()
		}
	}

	fs := scale * style.FontScale
	left := w * 0.1

	if text.Subtitle != "" {
		dc.SetFontFace(RegularFace(28 * fs))
		dc.SetColor(HexToRGBA(style.AccentColor, 1))
		dc.DrawStringAnchored(text.Subtitle, left, bandH*0.24, 0, 0.5)
	}

	dc.SetFontFace(BoldFace(72 * fs))
	dc.SetColor(HexToRGBA("#ffffff", 1))
	y := drawWrappedLeft(dc, text.Title, left, bandH*0.42, w*0.8, 84*fs)

	if text.Tagline != "" {
		dc.SetFontFace(RegularFace(30 * fs))
		dc.SetColor(HexToRGBA("#ffffff", 0.82))
		drawWrappedLeft(dc, text.Tagline, left, y+16*fs, w*0.75, 40*fs)
	}

	// Bant altına vurgu şeridi
	dc.SetColor(HexToRGBA(style.AccentColor, 1))
	dc.DrawRectangle(0, bandH, w, 8*scale)
	dc.Fill()

	ink := "#1f2937"
	if style.hasBackdrop {
		ink = "#f9fafb"
	}
	rows := []struct{ emoji, label, value string }{
		{"📅", "Tarih", text.DateLine},
		{"🕐", "Saat", text.TimeLine},
		{"📍", "Yer", text.Location},
	}
	y = bandH + h*0.1
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		dc.SetFontFace(BoldFace(26 * fs))
		dc.SetColor(HexToRGBA(style.SecondaryColor, 1))
		dc.DrawStringAnchored(withEmoji(style.ShowEmojis, row.emoji, row.label), left, y, 0, 0.5)
		dc.SetFontFace(RegularFace(30 * fs))
		dc.SetColor(HexToRGBA(ink, 1))
		y = drawWrappedLeft(dc, row.value, left+200*fs, y, w*0.62, 38*fs)
		y += 26 * fs
	}

	if text.LocationDetail != "" {
		dc.SetFontFace(RegularFace(24 * fs))
		dc.SetColor(HexToRGBA("#6b7280", 1))
		drawWrappedLeft(dc, text.LocationDetail, left+200*fs, y-16*fs, w*0.62, 32*fs)
	}

	if text.Footer != "" {
		dc.SetColor(HexToRGBA(style.SecondaryColor, 1))
		dc.DrawRectangle(0, h-70*scale, w, 70*scale)
		dc.Fill()
		dc.SetFontFace(RegularFace(24 * fs))
		dc.SetColor(HexToRGBA("#ffffff", 0.9))
		dc.DrawStringAnchored(text.Footer, w/2, h-35*scale, 0.5, 0.5)
	}
}
