package poster

import (
	"math/rand"

	"github.com/fogleman/gg"
)

// drawTech: koyu lacivert zemin, devre izleri ve köşeli parantez vurguları.
func drawTech(dc *gg.Context, size CanvasSize, scale float64, text TextFields, style Style, rng *rand.Rand) {
	w := float64(size.Width)
	h := float64(size.Height)

	fillBase(dc, w, h, style, func() {
		grad := gg.NewLinearGradient(0, 0, w, h)
		grad.AddColorStop(0, HexToRGBA("#0a0e1a", 1))
		grad.AddColorStop(1, HexToRGBA("#101936", 1))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	})

	if style.ShowDecorations {
		// Devre izleri: dik açılı kırılan çizgiler, uçlarında pad noktası
		dc.SetLineWidth(2 * scale)
		for i := 0; i < 9; i++ {
			x := rng.Float64() * w
			y := rng.Float64() * h
			c := style.AccentColor
			if i%3 == 0 {
				c = style.SecondaryColor
			}
			dc.SetColor(HexToRGBA(c, 0.3))
			segX := (40 + rng.Float64()*140) * scale
			segY := (40 + rng.Float64()*140) * scale
			if rng.Intn(2) == 0 {
				segX = -segX
			}
			if rng.Intn(2) == 0 {
				segY = -segY
			}
			dc.MoveTo(x, y)
			dc.LineTo(x+segX, y)
			dc.LineTo(x+segX, y+segY)
			dc.Stroke()
			dc.SetColor(HexToRGBA(c, 0.55))
			dc.DrawCircle(x+segX, y+segY, 4*scale)
			dc.Fill()
		}
	}

	fs := scale * style.FontScale
	cx := w / 2

	if text.Subtitle != "" {
		dc.SetFontFace(RegularFace(30 * fs))
		dc.SetColor(HexToRGBA(style.AccentColor, 1))
		dc.DrawStringAnchored("< "+text.Subtitle+" />", cx, h*0.19, 0.5, 0.5)
	}

	dc.SetFontFace(BoldFace(84 * fs))
	dc.SetColor(HexToRGBA(style.TextColor, 1))
	y := drawWrapped(dc, text.Title, cx, h*0.3, w*0.82, 96*fs)

	// Başlık altına terminal imleci hissi veren vurgu bloğu
	dc.SetColor(HexToRGBA(style.AccentColor, 1))
	dc.DrawRectangle(cx-8*fs, y+10*fs, 16*fs, 34*fs)
	dc.Fill()

	if text.Tagline != "" {
		dc.SetFontFace(RegularFace(32 * fs))
		dc.SetColor(HexToRGBA(style.TextColor, 0.75))
		drawWrapped(dc, text.Tagline, cx, y+72*fs, w*0.72, 42*fs)
	}

	// Bilgi satırları: sol kenarda dikey çizgi ile kod bloğu görünümü
	blockX := w * 0.16
	y = h * 0.66
	dc.SetColor(HexToRGBA(style.SecondaryColor, 0.8))
	dc.DrawRectangle(blockX-24*fs, y-24*fs, 4*fs, 170*fs)
	dc.Fill()

	dc.SetFontFace(BoldFace(30 * fs))
	dc.SetColor(HexToRGBA(style.AccentColor, 1))
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "📅", text.DateLine), blockX, y, 0, 0.5)

	dc.SetFontFace(RegularFace(28 * fs))
	dc.SetColor(HexToRGBA(style.TextColor, 0.9))
	y += 50 * fs
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "🕐", text.TimeLine), blockX, y, 0, 0.5)
	y += 50 * fs
	drawWrappedLeft(dc, withEmoji(style.ShowEmojis, "📍", text.Location), blockX, y, w*0.7, 38*fs)

	if text.Footer != "" {
		dc.SetFontFace(RegularFace(24 * fs))
		dc.SetColor(HexToRGBA(style.SecondaryColor, 1))
		dc.DrawStringAnchored("// "+text.Footer, cx, h-32*scale, 0.5, 0.5)
	}
}
