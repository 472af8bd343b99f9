package poster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math/rand"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// ErrSurface istenen tuval boyutu ayrılamadığında döner; o üretim geçişi
// için ölümcüldür, kısmi çıktı üretilmez.
var ErrSurface = errors.New("poster: çizim yüzeyi oluşturulamadı")

// maxSurfacePixels tek bir tuval için üst sınır (yaklaşık A3 @300dpi x4).
const maxSurfacePixels = 64 << 20

// JPEG dışa aktarım kalitesi.
const jpegQuality = 95

// EventInfo davetiyeye basılacak etkinlik metinleri. Render başına
// değişmezdir; yaşam döngüsü burada yönetilmez.
type EventInfo struct {
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle"`
	Tagline        string    `json:"tagline"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	LocationDetail string    `json:"location_detail"`
	Address        string    `json:"address"`
}

// Request tek bir üretim geçişinin tüm girdileri.
type Request struct {
	Template Template  `json:"template"`
	Size     string    `json:"size"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Event    EventInfo `json:"event"`
	Style    Style     `json:"style"`

	// Boş olmayan override etkinlik alanının yerine geçer.
	CustomTitle    string `json:"custom_title"`
	CustomSubtitle string `json:"custom_subtitle"`
	CustomFooter   string `json:"custom_footer"`

	// Arka plan görseli ve opaklığı (0 ise 1 kabul edilir).
	Background        image.Image `json:"-"`
	BackgroundOpacity float64     `json:"background_opacity"`

	// Dolu ise sağ alt köşeye QR bindirilir.
	QRContent string `json:"qr_content"`

	// Dekor rastgeleliği için tohum; 0 ise zamandan türetilir.
	Seed int64 `json:"seed"`
}

// Composer arka plan → şablon → QR sırasını işleten orkestrasyon katmanı.
// Her geçiş kendi tuvalini ayırır; paylaşılan yüzey yoktur.
type Composer struct {
	logger *zap.Logger
}

func NewComposer(logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{logger: logger}
}

// Compose isteği tek geçişte görüntüye çevirir. Sıra sabittir: arka plan
// görseli, şablon içeriği, QR bindirmesi. İsteğe bağlı varlık hataları
// loglanıp atlanır; yalnızca yüzey hatası geçişi düşürür.
func (c *Composer) Compose(req Request) (image.Image, error) {
	size := ResolveSize(req.Size, req.Width, req.Height)
	if size.Width*size.Height > maxSurfacePixels {
		return nil, ErrSurface
	}

	rgba := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	dc := gg.NewContextForRGBA(rgba)

	style := req.Style
	if req.Background != nil {
		c.drawBackground(rgba, req.Background, req.BackgroundOpacity, size)
		style = style.WithBackdrop()
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	Draw(req.Template, dc, size, c.resolveText(req), style, rng)

	if req.QRContent != "" {
		if err := c.overlayQR(dc, size, req.QRContent); err != nil {
			// QR üretilemezse davetiye QR'sız tamamlanır.
			c.logger.Warn("qr bindirmesi atlandı", zap.Error(err))
		}
	}

	return rgba, nil
}

// resolveText boş olmayan override'ları, kalanını etkinlik alanlarını
// kullanarak şablon metinlerini kurar.
func (c *Composer) resolveText(req Request) TextFields {
	dateLine, timeLine := FormatEventDate(req.Event.Date)

	pick := func(custom, base string) string {
		if custom != "" {
			return custom
		}
		return base
	}

	return TextFields{
		Title:          pick(req.CustomTitle, req.Event.Title),
		Subtitle:       pick(req.CustomSubtitle, req.Event.Subtitle),
		Tagline:        req.Event.Tagline,
		DateLine:       dateLine,
		TimeLine:       timeLine,
		Location:       req.Event.Location,
		LocationDetail: req.Event.LocationDetail,
		Footer:         pick(req.CustomFooter, req.Event.Address),
	}
}

// drawBackground görseli tuvali dolduracak şekilde kırpıp verilen opaklıkla
// en arkaya basar. Sonraki çizimler tam opak devam eder.
func (c *Composer) drawBackground(dst *image.RGBA, bg image.Image, opacity float64, size CanvasSize) {
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	fitted := imaging.Fill(bg, size.Width, size.Height, imaging.Center, imaging.Lanczos)
	mask := image.NewUniform(color.Alpha{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(dst, dst.Bounds(), fitted, image.Point{}, mask, image.Point{}, draw.Over)
}

// overlayQR kısa kenarın %15'i boyutunda QR üretir, arkasına beyaz dolgulu
// zemin koyup sağ alt kenar boşluğuna yerleştirir.
func (c *Composer) overlayQR(dc *gg.Context, size CanvasSize, content string) error {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return err
	}

	shorter := size.Width
	if size.Height < shorter {
		shorter = size.Height
	}
	px := int(float64(shorter) * 0.15)

	scale := size.Scale()
	margin := 40 * scale
	pad := float64(px) * 0.08

	x := float64(size.Width) - float64(px) - margin
	y := float64(size.Height) - float64(px) - margin

	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(x-pad, y-pad, float64(px)+2*pad, float64(px)+2*pad, 10*scale)
	dc.Fill()

	dc.DrawImage(qr.Image(px), int(x), int(y))
	return nil
}

// EncodePNG birincil dışa aktarım biçimi.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJPEG alternatif dışa aktarım; kalite sabittir.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
