package poster

import (
	"math/rand"

	"github.com/fogleman/gg"
)

// drawModern: köşegen degrade, yumuşak daireler ve alt bilgi kartı.
func drawModern(dc *gg.Context, size CanvasSize, scale float64, text TextFields, style Style, rng *rand.Rand) {
	w := float64(size.Width)
	h := float64(size.Height)

	fillBase(dc, w, h, style, func() {
		grad := gg.NewLinearGradient(0, 0, w, h)
		grad.AddColorStop(0, HexToRGBA(style.PrimaryColor, 1))
		grad.AddColorStop(0.55, HexToRGBA(AdjustBrightness(style.PrimaryColor, -35), 1))
		grad.AddColorStop(1, HexToRGBA(AdjustBrightness(style.SecondaryColor, -20), 1))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	})

	if style.ShowDecorations {
		// Rastgele konumlu yarı saydam daireler
		for i := 0; i < 6; i++ {
			r := (60 + rng.Float64()*180) * scale
			x := rng.Float64() * w
			y := rng.Float64() * h
			dc.SetColor(HexToRGBA("#ffffff", 0.05+rng.Float64()*0.06))
			dc.DrawCircle(x, y, r)
			dc.Fill()
		}
		dc.SetColor(HexToRGBA(style.AccentColor, 0.85))
		dc.DrawCircle(w-120*scale, 140*scale, 46*scale)
		dc.Fill()
	}

	fs := scale * style.FontScale
	cx := w / 2

	if text.Subtitle != "" {
		dc.SetFontFace(RegularFace(36 * fs))
		dc.SetColor(HexToRGBA(style.AccentColor, 1))
		dc.DrawStringAnchored(text.Subtitle, cx, h*0.2, 0.5, 0.5)
	}

	dc.SetFontFace(BoldFace(84 * fs))
	dc.SetColor(HexToRGBA(style.TextColor, 1))
	y := drawWrapped(dc, text.Title, cx, h*0.3, w*0.82, 96*fs)

	if text.Tagline != "" {
		dc.SetFontFace(ItalicFace(34 * fs))
		dc.SetColor(HexToRGBA(style.TextColor, 0.85))
		y = drawWrapped(dc, text.Tagline, cx, y+30*fs, w*0.72, 44*fs)
	}

	// Vurgu çizgisi
	dc.SetColor(HexToRGBA(style.AccentColor, 1))
	dc.DrawRoundedRectangle(cx-90*fs, y+24*fs, 180*fs, 8*fs, 4*fs)
	dc.Fill()

	// Alt bilgi kartı
	cardH := h * 0.22
	cardY := h - cardH - 60*scale
	dc.SetColor(HexToRGBA("#000000", 0.28))
	dc.DrawRoundedRectangle(w*0.09, cardY, w*0.82, cardH, 24*scale)
	dc.Fill()

	dc.SetFontFace(BoldFace(34 * fs))
	dc.SetColor(HexToRGBA(style.TextColor, 1))
	lineY := cardY + cardH*0.26
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "📅", text.DateLine), cx, lineY, 0.5, 0.5)

	dc.SetFontFace(RegularFace(30 * fs))
	lineY += cardH * 0.25
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "🕐", text.TimeLine), cx, lineY, 0.5, 0.5)
	lineY += cardH * 0.25
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "📍", text.Location), cx, lineY, 0.5, 0.5)

	if text.Footer != "" {
		dc.SetFontFace(RegularFace(24 * fs))
		dc.SetColor(HexToRGBA(style.TextColor, 0.7))
		dc.DrawStringAnchored(text.Footer, cx, h-28*scale, 0.5, 0.5)
	}
}
