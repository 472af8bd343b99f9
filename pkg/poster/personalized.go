package poster

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// ComposePersonalized kayıt sahibine özel, girişte okutulacak QR'ı gömülü
// tek şablonlu davetiyeyi üretir. Genel şablon kümesinden geçmez; boyut
// kare preset'e sabittir.
func (c *Composer) ComposePersonalized(event EventInfo, guestName, qrPayload string) (image.Image, error) {
	size := ResolveSize("square", 0, 0)
	scale := size.Scale()
	w := float64(size.Width)
	h := float64(size.Height)

	rgba := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	dc := gg.NewContextForRGBA(rgba)

	grad := gg.NewLinearGradient(0, 0, w, h)
	grad.AddColorStop(0, HexToRGBA("#1e1b4b", 1))
	grad.AddColorStop(1, HexToRGBA("#312e81", 1))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// Çerçeve
	m := 48 * scale
	dc.SetColor(HexToRGBA("#c7d2fe", 0.7))
	dc.SetLineWidth(2 * scale)
	dc.DrawRoundedRectangle(m, m, w-2*m, h-2*m, 24*scale)
	dc.Stroke()

	cx := w / 2

	dc.SetFontFace(RegularFace(30 * scale))
	dc.SetColor(HexToRGBA("#a5b4fc", 1))
	dc.DrawStringAnchored("KİŞİYE ÖZEL DAVETİYE", cx, h*0.14, 0.5, 0.5)

	dc.SetFontFace(BoldFace(64 * scale))
	dc.SetColor(color.White)
	y := drawWrapped(dc, event.Title, cx, h*0.23, w*0.78, 74*scale)

	dc.SetFontFace(ItalicFace(44 * scale))
	dc.SetColor(HexToRGBA("#fbbf24", 1))
	y = drawWrapped(dc, guestName, cx, y+36*scale, w*0.78, 54*scale)

	dateLine, timeLine := FormatEventDate(event.Date)
	dc.SetFontFace(RegularFace(28 * scale))
	dc.SetColor(HexToRGBA("#e0e7ff", 1))
	y += 30 * scale
	if dateLine != "" {
		dc.DrawStringAnchored(dateLine+"  •  "+timeLine, cx, y, 0.5, 0.5)
		y += 44 * scale
	}
	if event.Location != "" {
		y = drawWrapped(dc, event.Location, cx, y, w*0.74, 38*scale)
	}

	// Giriş QR'ı: kapıda okutulacağı için genel bindirmeden daha büyük
	qr, err := qrcode.New(qrPayload, qrcode.Medium)
	if err != nil {
		// Payload kodlanamazsa kişisel davetiyenin anlamı kalmaz.
		c.logger.Error("giriş qr üretilemedi", zap.Error(err))
		return nil, err
	}
	px := int(w * 0.28)
	pad := float64(px) * 0.07
	qx := cx - float64(px)/2
	qy := h*0.88 - float64(px)

	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(qx-pad, qy-pad, float64(px)+2*pad, float64(px)+2*pad, 14*scale)
	dc.Fill()
	dc.DrawImage(qr.Image(px), int(qx), int(qy))

	dc.SetFontFace(RegularFace(22 * scale))
	dc.SetColor(HexToRGBA("#a5b4fc", 0.9))
	dc.DrawStringAnchored("Girişte bu kodu okutunuz", cx, h*0.92, 0.5, 0.5)

	return rgba, nil
}
