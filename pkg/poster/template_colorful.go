package poster

import (
	"math/rand"

	"github.com/fogleman/gg"
)

// drawColorful: üç duraklı canlı degrade ve konfeti.
func drawColorful(dc *gg.Context, size CanvasSize, scale float64, text TextFields, style Style, rng *rand.Rand) {
	w := float64(size.Width)
	h := float64(size.Height)

	fillBase(dc, w, h, style, func() {
		grad := gg.NewLinearGradient(0, 0, w, h)
		grad.AddColorStop(0, HexToRGBA(style.PrimaryColor, 1))
		grad.AddColorStop(0.5, HexToRGBA(style.AccentColor, 1))
		grad.AddColorStop(1, HexToRGBA(style.SecondaryColor, 1))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	})

	if style.ShowDecorations {
		// Konfeti: rastgele konum, boyut ve dönüşte küçük dikdörtgenler
		confetti := []string{"#ffffff", style.AccentColor, AdjustBrightness(style.SecondaryColor, 60), AdjustBrightness(style.PrimaryColor, 80)}
		for i := 0; i < 40; i++ {
			x := rng.Float64() * w
			y := rng.Float64() * h
			s := (6 + rng.Float64()*14) * scale
			dc.Push()
			dc.RotateAbout(rng.Float64()*6.28, x, y)
			dc.SetColor(HexToRGBA(confetti[i%len(confetti)], 0.35+rng.Float64()*0.4))
			dc.DrawRectangle(x, y, s, s*0.4)
			dc.Fill()
			dc.Pop()
		}
	}

	fs := scale * style.FontScale
	cx := w / 2

	// Başlık arkasına yumuşak panel; canlı degradede okunurluk için
	dc.SetColor(HexToRGBA("#000000", 0.22))
	dc.DrawRoundedRectangle(w*0.07, h*0.22, w*0.86, h*0.36, 30*scale)
	dc.Fill()

	if text.Subtitle != "" {
		dc.SetFontFace(BoldFace(32 * fs))
		dc.SetColor(HexToRGBA("#ffffff", 0.9))
		dc.DrawStringAnchored(text.Subtitle, cx, h*0.27, 0.5, 0.5)
	}

	dc.SetFontFace(BoldFace(88 * fs))
	dc.SetColor(HexToRGBA(style.TextColor, 1))
	y := drawWrapped(dc, text.Title, cx, h*0.35, w*0.78, 98*fs)

	if text.Tagline != "" {
		dc.SetFontFace(ItalicFace(34 * fs))
		dc.SetColor(HexToRGBA("#ffffff", 0.9))
		drawWrapped(dc, text.Tagline, cx, y+22*fs, w*0.7, 44*fs)
	}

	dc.SetFontFace(BoldFace(34 * fs))
	dc.SetColor(HexToRGBA("#ffffff", 1))
	y = h * 0.7
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "🎉", text.DateLine), cx, y, 0.5, 0.5)
	y += 52 * fs
	dc.SetFontFace(RegularFace(30 * fs))
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "🕐", text.TimeLine), cx, y, 0.5, 0.5)
	y += 48 * fs
	drawWrapped(dc, withEmoji(style.ShowEmojis, "📍", text.Location), cx, y, w*0.8, 40*fs)

	if text.Footer != "" {
		dc.SetFontFace(BoldFace(24 * fs))
		dc.SetColor(HexToRGBA("#ffffff", 0.85))
		dc.DrawStringAnchored(text.Footer, cx, h-36*scale, 0.5, 0.5)
	}
}
