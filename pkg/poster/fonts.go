package poster

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	parseOnce   sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	italicFont  *truetype.Font

	faceMu    sync.Mutex
	faceCache = map[faceKey]font.Face{}
)

type faceKey struct {
	weight string
	size   int
}

func loadFonts() {
	parseOnce.Do(func() {
		// Gömülü Go fontları: dosya sistemine bağımlılık yok, Türkçe
		// karakter kapsaması tam.
		regularFont, _ = truetype.Parse(goregular.TTF)
		boldFont, _ = truetype.Parse(gobold.TTF)
		italicFont, _ = truetype.Parse(goitalic.TTF)
	})
}

func face(weight string, size float64) font.Face {
	loadFonts()

	// Yakın boyutlar aynı face'i paylaşsın diye tam sayıya yuvarlanır.
	key := faceKey{weight: weight, size: int(size + 0.5)}
	if key.size < 4 {
		key.size = 4
	}

	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faceCache[key]; ok {
		return f
	}

	var ttf *truetype.Font
	switch weight {
	case "bold":
		ttf = boldFont
	case "italic":
		ttf = italicFont
	default:
		ttf = regularFont
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: float64(key.size)})
	faceCache[key] = f
	return f
}

// RegularFace verilen punto için normal ağırlıkta font yüzü döner.
func RegularFace(size float64) font.Face { return face("regular", size) }

// BoldFace verilen punto için kalın font yüzü döner.
func BoldFace(size float64) font.Face { return face("bold", size) }

// ItalicFace verilen punto için italik font yüzü döner.
func ItalicFace(size float64) font.Face { return face("italic", size) }
