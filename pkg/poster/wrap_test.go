package poster

import (
	"strings"
	"testing"

	"github.com/fogleman/gg"
)

func newMeasureContext() *gg.Context {
	dc := gg.NewContext(1080, 1080)
	dc.SetFontFace(RegularFace(32))
	return dc
}

func TestWrapTextKeepsAllWords(t *testing.T) {
	dc := newMeasureContext()
	text := "Uluslararası Kardiyoloji Kongresi açılış oturumu ve kayıt masası bilgilendirmesi"

	lines := WrapText(dc, text, 400)
	if len(lines) < 2 {
		t.Fatalf("uzun metin sarılmalıydı, gelen %d satır", len(lines))
	}
	if strings.Join(lines, " ") != text {
		t.Fatalf("kelime kaybı var:\n%q\n%q", strings.Join(lines, " "), text)
	}
}

func TestWrapTextLinesFitWidth(t *testing.T) {
	dc := newMeasureContext()
	maxWidth := 350.0

	lines := WrapText(dc, "konferans salonu giriş kapısı yanındaki kayıt masası", maxWidth)
	for _, line := range lines {
		w, _ := dc.MeasureString(line)
		if w > maxWidth && strings.Contains(line, " ") {
			t.Fatalf("satır %q genişliği %v, sınır %v", line, w, maxWidth)
		}
	}
}

func TestWrapTextShortAndEmpty(t *testing.T) {
	dc := newMeasureContext()

	if lines := WrapText(dc, "Davet", 500); len(lines) != 1 || lines[0] != "Davet" {
		t.Fatalf("kısa metin tek satır kalmalı: %v", lines)
	}
	if lines := WrapText(dc, "", 500); len(lines) != 0 {
		t.Fatalf("boş metin satır üretmemeli: %v", lines)
	}
}
