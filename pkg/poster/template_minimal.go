package poster

import (
	"math/rand"

	"github.com/fogleman/gg"
)

// drawMinimal: beyaz zemin, sola dayalı tipografi, tek vurgu çizgisi.
func drawMinimal(dc *gg.Context, size CanvasSize, scale float64, text TextFields, style Style, rng *rand.Rand) {
	w := float64(size.Width)
	h := float64(size.Height)

	fillBase(dc, w, h, style, func() {
		dc.SetColor(HexToRGBA("#fafafa", 1))
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	})

	// Açık zeminde varsayılan beyaz metin okunmaz; koyuya çevrilir.
	// Arka plan görseli varsa karartma basıldığı için beyaz kalır.
	ink := style.TextColor
	if ink == "#ffffff" && !style.hasBackdrop {
		ink = "#18181b"
	}

	fs := scale * style.FontScale
	left := w * 0.12

	dc.SetColor(HexToRGBA(style.PrimaryColor, 1))
	dc.DrawRectangle(left, h*0.16, 70*fs, 10*fs)
	dc.Fill()

	if text.Subtitle != "" {
		dc.SetFontFace(RegularFace(30 * fs))
		dc.SetColor(HexToRGBA(AdjustBrightness(ink, 90), 1))
		dc.DrawStringAnchored(text.Subtitle, left, h*0.235, 0, 0.5)
	}

	dc.SetFontFace(BoldFace(80 * fs))
	dc.SetColor(HexToRGBA(ink, 1))
	y := drawWrappedLeft(dc, text.Title, left, h*0.32, w*0.76, 92*fs)

	if text.Tagline != "" {
		dc.SetFontFace(RegularFace(32 * fs))
		dc.SetColor(HexToRGBA(AdjustBrightness(ink, 70), 1))
		y = drawWrappedLeft(dc, text.Tagline, left, y+24*fs, w*0.7, 42*fs)
	}

	if style.ShowDecorations {
		// Sağ alt köşede ince kesişen çizgiler
		dc.SetColor(HexToRGBA(style.PrimaryColor, 0.16))
		dc.SetLineWidth(1.5 * scale)
		for i := 0; i < 5; i++ {
			off := float64(i) * 26 * scale
			dc.DrawLine(w-210*scale+off, h-60*scale, w-60*scale, h-210*scale+off)
			dc.Stroke()
		}
	}

	dc.SetFontFace(BoldFace(30 * fs))
	dc.SetColor(HexToRGBA(style.PrimaryColor, 1))
	y = h * 0.72
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "📅", text.DateLine), left, y, 0, 0.5)

	dc.SetFontFace(RegularFace(28 * fs))
	dc.SetColor(HexToRGBA(ink, 0.85))
	y += 46 * fs
	dc.DrawStringAnchored(withEmoji(style.ShowEmojis, "🕐", text.TimeLine), left, y, 0, 0.5)
	y += 46 * fs
	y = drawWrappedLeft(dc, withEmoji(style.ShowEmojis, "📍", text.Location), left, y, w*0.76, 38*fs)

	if text.Footer != "" {
		dc.SetFontFace(RegularFace(22 * fs))
		dc.SetColor(HexToRGBA(AdjustBrightness(ink, 110), 1))
		dc.DrawStringAnchored(text.Footer, left, h-44*scale, 0, 0.5)
	}
}
