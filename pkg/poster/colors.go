package poster

import (
	"image/color"
	"strconv"
	"strings"
)

// HexToRGBA "#rrggbb" (veya "rrggbb") değerini verilen alpha ile RGBA'ya çevirir.
// Geçersiz girişte siyah döner, render hiçbir zaman patlamaz.
func HexToRGBA(hex string, alpha float64) color.RGBA {
	r, g, b, ok := parseHex(hex)
	if !ok {
		r, g, b = 0, 0, 0
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// AdjustBrightness hex rengi amount kadar açar (pozitif) veya koyulaştırır (negatif).
// Gradient duraklarını tek ana renkten türetmek için kullanılır.
func AdjustBrightness(hex string, amount int) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}
	clamp := func(v int) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	r = clamp(int(r) + amount)
	g = clamp(int(g) + amount)
	b = clamp(int(b) + amount)

	var sb strings.Builder
	sb.WriteByte('#')
	for _, v := range []uint8{r, g, b} {
		s := strconv.FormatInt(int64(v), 16)
		if len(s) == 1 {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		// #abc -> #aabbcc
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
