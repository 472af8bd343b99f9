package poster

import (
	"math/rand"

	"github.com/fogleman/gg"
)

// drawElegant: koyu zemin, çift çerçeve ve köşe süslemeleriyle klasik davetiye.
func drawElegant(dc *gg.Context, size CanvasSize, scale float64, text TextFields, style Style, rng *rand.Rand) {
	w := float64(size.Width)
	h := float64(size.Height)

	base := AdjustBrightness(style.PrimaryColor, -90)
	fillBase(dc, w, h, style, func() {
		grad := gg.NewLinearGradient(0, 0, 0, h)
		grad.AddColorStop(0, HexToRGBA(base, 1))
		grad.AddColorStop(1, HexToRGBA(AdjustBrightness(base, -25), 1))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	})

	// Çift çerçeve
	m := 56 * scale
	dc.SetColor(HexToRGBA(style.AccentColor, 0.9))
	dc.SetLineWidth(3 * scale)
	dc.DrawRectangle(m, m, w-2*m, h-2*m)
	dc.Stroke()
	dc.SetLineWidth(1 * scale)
	dc.DrawRectangle(m+14*scale, m+14*scale, w-2*(m+14*scale), h-2*(m+14*scale))
	dc.Stroke()

	if style.ShowDecorations {
		// Köşelerde sabit konumlu süsler
		for _, c := range [][2]float64{{m, m}, {w - m, m}, {m, h - m}, {w - m, h - m}} {
			dc.SetColor(HexToRGBA(style.AccentColor, 1))
			dc.DrawCircle(c[0], c[1], 7*scale)
			dc.Fill()
			dc.SetLineWidth(1.5 * scale)
			dc.DrawCircle(c[0], c[1], 14*scale)
			dc.Stroke()
		}
	}

	fs := scale * style.FontScale
	cx := w / 2

	dc.SetFontFace(ItalicFace(32 * fs))
	dc.SetColor(HexToRGBA(style.AccentColor, 1))
	dc.DrawStringAnchored("DAVETLİSİNİZ", cx, h*0.2, 0.5, 0.5)

	// Ayraç
	dc.SetLineWidth(1 * scale)
	dc.DrawLine(cx-130*fs, h*0.235, cx+130*fs, h*0.235)
	dc.Stroke()

	dc.SetFontFace(BoldFace(76 * fs))
	dc.SetColor(HexToRGBA(style.TextColor, 1))
	y := drawWrapped(dc, text.Title, cx, h*0.31, w*0.72, 88*fs)

	if text.Tagline != "" {
		dc.SetFontFace(ItalicFace(32 * fs))
		dc.SetColor(HexToRGBA(style.TextColor, 0.8))
		y = drawWrapped(dc, text.Tagline, cx, y+26*fs, w*0.64, 42*fs)
	}

	dc.SetFontFace(RegularFace(30 * fs))
	dc.SetColor(HexToRGBA(style.AccentColor, 1))
	y = h * 0.66
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "📅", text.DateLine), cx, y, 0.5, 0.5)
	y += 48 * fs
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "🕐", text.TimeLine), cx, y, 0.5, 0.5)

	dc.SetColor(HexToRGBA(style.TextColor, 0.92))
	y += 48 * fs
	y = drawWrapped(dc, withEmoji(style.ShowEmojis, "📍", text.Location), cx, y, w*0.7, 40*fs)
	if text.LocationDetail != "" {
		dc.SetFontFace(RegularFace(26 * fs))
		dc.SetColor(HexToRGBA(style.TextColor, 0.65))
		drawWrapped(dc, text.LocationDetail, cx, y+4*fs, w*0.7, 34*fs)
	}

	if text.Footer != "" {
		dc.SetFontFace(ItalicFace(24 * fs))
		dc.SetColor(HexToRGBA(style.AccentColor, 0.8))
		dc.DrawStringAnchored(text.Footer, cx, h-m-26*scale, 0.5, 0.5)
	}
}
