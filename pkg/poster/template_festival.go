package poster

import (
	"math/rand"

	"github.com/fogleman/gg"
)

// drawFestival: gece degradesi üzerinde neon halkalar ve parlama efektleri.
func drawFestival(dc *gg.Context, size CanvasSize, scale float64, text TextFields, style Style, rng *rand.Rand) {
	w := float64(size.Width)
	h := float64(size.Height)

	fillBase(dc, w, h, style, func() {
		grad := gg.NewLinearGradient(0, 0, 0, h)
		grad.AddColorStop(0, HexToRGBA("#0f0f23", 1))
		grad.AddColorStop(0.6, HexToRGBA(AdjustBrightness(style.PrimaryColor, -70), 1))
		grad.AddColorStop(1, HexToRGBA(AdjustBrightness(style.SecondaryColor, -60), 1))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	})

	if style.ShowDecorations {
		// Neon halkalar: iç içe azalan alfa ile parlama taklidi
		neon := []string{style.AccentColor, style.PrimaryColor, style.SecondaryColor}
		for i := 0; i < 7; i++ {
			x := rng.Float64() * w
			y := rng.Float64() * h
			r := (30 + rng.Float64()*90) * scale
			c := neon[i%len(neon)]
			for ring := 3; ring >= 1; ring-- {
				dc.SetColor(HexToRGBA(c, 0.08*float64(ring)))
				dc.SetLineWidth(float64(5-ring) * 2 * scale)
				dc.DrawCircle(x, y, r+float64(3-ring)*6*scale)
				dc.Stroke()
			}
		}
		// Yıldız noktaları
		dc.SetColor(HexToRGBA("#ffffff", 0.8))
		for i := 0; i < 30; i++ {
			dc.DrawCircle(rng.Float64()*w, rng.Float64()*h*0.5, (1+rng.Float64()*2)*scale)
			dc.Fill()
		}
	}

	fs := scale * style.FontScale
	cx := w / 2

	if text.Subtitle != "" {
		dc.SetFontFace(BoldFace(34 * fs))
		dc.SetColor(HexToRGBA(style.AccentColor, 1))
		dc.DrawStringAnchored(text.Subtitle, cx, h*0.18, 0.5, 0.5)
	}

	// Neon başlık: arkada renkli kopya, önde beyaz
	dc.SetFontFace(BoldFace(92 * fs))
	dc.SetColor(HexToRGBA(style.AccentColor, 0.45))
	drawWrapped(dc, text.Title, cx+3*scale, h*0.3+3*scale, w*0.84, 104*fs)
	dc.SetColor(HexToRGBA(style.TextColor, 1))
	y := drawWrapped(dc, text.Title, cx, h*0.3, w*0.84, 104*fs)

	if text.Tagline != "" {
		dc.SetFontFace(ItalicFace(34 * fs))
		dc.SetColor(HexToRGBA(style.TextColor, 0.8))
		drawWrapped(dc, text.Tagline, cx, y+24*fs, w*0.72, 44*fs)
	}

	dc.SetFontFace(BoldFace(36 * fs))
	dc.SetColor(HexToRGBA(style.AccentColor, 1))
	y = h * 0.68
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "🎪", text.DateLine), cx, y, 0.5, 0.5)

	dc.SetFontFace(RegularFace(30 * fs))
	dc.SetColor(HexToRGBA(style.TextColor, 0.95))
	y += 52 * fs
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "🕐", text.TimeLine), cx, y, 0.5, 0.5)
	y += 48 * fs
	drawWrapped(dc, withEmoji(style.ShowEmojis, "📍", text.Location), cx, y, w*0.8, 40*fs)

	if text.Footer != "" {
		dc.SetFontFace(BoldFace(26 * fs))
		dc.SetColor(HexToRGBA(style.AccentColor, 0.9))
		dc.DrawStringAnchored(text.Footer, cx, h-36*scale, 0.5, 0.5)
	}
}
