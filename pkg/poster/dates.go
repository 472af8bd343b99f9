package poster

import (
	"fmt"
	"time"
)

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

var turkishDays = [...]string{
	"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
}

// FormatEventDate etkinlik tarihini "14 Mart 2026, Cumartesi" ve 24 saatlik
// "19:30" olarak iki satıra ayırır. Sıfır zaman için boş döner.
func FormatEventDate(t time.Time) (dateLine, timeLine string) {
	if t.IsZero() {
		return "", ""
	}
	dateLine = fmt.Sprintf("%d %s %d, %s",
		t.Day(), turkishMonths[t.Month()-1], t.Year(), turkishDays[t.Weekday()])
	timeLine = t.Format("15:04")
	return dateLine, timeLine
}
