package poster

import (
	"strings"
	"testing"
	"time"
)

func TestFormatEventDate(t *testing.T) {
	d := time.Date(2026, time.March, 14, 19, 30, 0, 0, time.Local)
	dateLine, timeLine := FormatEventDate(d)
	if dateLine != "14 Mart 2026, Cumartesi" {
		t.Fatalf("dateLine = %q", dateLine)
	}
	if timeLine != "19:30" {
		t.Fatalf("timeLine = %q", timeLine)
	}
}

func TestFormatEventDateZero(t *testing.T) {
	dateLine, timeLine := FormatEventDate(time.Time{})
	if dateLine != "" || timeLine != "" {
		t.Fatalf("sıfır zaman boş dönmeli: %q / %q", dateLine, timeLine)
	}
}

func TestFormatEventDateAllMonths(t *testing.T) {
	want := []string{
		"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
	}
	for m := 1; m <= 12; m++ {
		d := time.Date(2026, time.Month(m), 10, 12, 0, 0, 0, time.Local)
		dateLine, _ := FormatEventDate(d)
		if !strings.Contains(dateLine, want[m-1]) {
			t.Fatalf("ay %d: %q içinde %q yok", m, dateLine, want[m-1])
		}
	}
}
