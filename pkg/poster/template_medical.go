package poster

import (
	"math/rand"

	"github.com/fogleman/gg"
)

// drawMedical: açık zemin, sakin başlık bandı ve artı motifli kongre düzeni.
func drawMedical(dc *gg.Context, size CanvasSize, scale float64, text TextFields, style Style, rng *rand.Rand) {
	w := float64(size.Width)
	h := float64(size.Height)

	fillBase(dc, w, h, style, func() {
		dc.SetColor(HexToRGBA("#f0f9ff", 1))
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	})

	headH := h * 0.36
	grad := gg.NewLinearGradient(0, 0, 0, headH)
	grad.AddColorStop(0, HexToRGBA(style.SecondaryColor, 1))
	grad.AddColorStop(1, HexToRGBA(AdjustBrightness(style.SecondaryColor, 50), 1))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, headH)
	dc.Fill()

	if style.ShowDecorations {
		// Bant üzerinde yarı saydam artı işaretleri
		for i := 0; i < 10; i++ {
			x := rng.Float64() * w
			y := rng.Float64() * headH
			s := (14 + rng.Float64()*20) * scale
			dc.SetColor(HexToRGBA("#ffffff", 0.12))
			dc.DrawRectangle(x-s/2, y-s/6, s, s/3)
			dc.Fill()
			dc.DrawRectangle(x-s/6, y-s/2, s/3, s)
			dc.Fill()
		}
	}

	fs := scale * style.FontScale
	cx := w / 2

	if text.Subtitle != "" {
		dc.SetFontFace(RegularFace(28 * fs))
		dc.SetColor(HexToRGBA("#ffffff", 0.85))
		dc.DrawStringAnchored(text.Subtitle, cx, headH*0.26, 0.5, 0.5)
	}

	dc.SetFontFace(BoldFace(68 * fs))
	dc.SetColor(HexToRGBA("#ffffff", 1))
	drawWrapped(dc, text.Title, cx, headH*0.48, w*0.82, 80*fs)

	ink := "#0c4a6e"
	if style.hasBackdrop {
		ink = "#e0f2fe"
	}
	if text.Tagline != "" {
		dc.SetFontFace(ItalicFace(32 * fs))
		dc.SetColor(HexToRGBA(ink, 0.85))
		drawWrapped(dc, text.Tagline, cx, headH+60*fs, w*0.74, 42*fs)
	}

	// Bilgi paneli
	panelY := h * 0.56
	panelH := h * 0.3
	dc.SetColor(HexToRGBA("#ffffff", 1))
	dc.DrawRoundedRectangle(w*0.1, panelY, w*0.8, panelH, 20*scale)
	dc.Fill()
	dc.SetColor(HexToRGBA(style.SecondaryColor, 0.35))
	dc.SetLineWidth(2 * scale)
	dc.DrawRoundedRectangle(w*0.1, panelY, w*0.8, panelH, 20*scale)
	dc.Stroke()

	// Panel zemini her durumda beyaz; panel metni sabit koyu kalır.
	panelInk := "#0c4a6e"
	dc.SetFontFace(BoldFace(30 * fs))
	dc.SetColor(HexToRGBA(panelInk, 1))
	y := panelY + panelH*0.22
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "📅", text.DateLine), cx, y, 0.5, 0.5)

	dc.SetFontFace(RegularFace(28 * fs))
	y += panelH * 0.24
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "🕐", text.TimeLine), cx, y, 0.5, 0.5)
	y += panelH * 0.24
	y = drawWrapped(dc, withEmoji(style.ShowEmojis, "📍", text.Location), cx, y, w*0.72, 36*fs)
	if text.LocationDetail != "" {
		dc.SetFontFace(RegularFace(24 * fs))
		dc.SetColor(HexToRGBA(panelInk, 0.6))
		drawWrapped(dc, text.LocationDetail, cx, y, w*0.72, 32*fs)
	}

	if text.Footer != "" {
		dc.SetFontFace(RegularFace(24 * fs))
		dc.SetColor(HexToRGBA(style.SecondaryColor, 1))
		dc.DrawStringAnchored(text.Footer, cx, h-36*scale, 0.5, 0.5)
	}
}
