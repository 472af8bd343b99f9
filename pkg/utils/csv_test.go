package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildQuotedCSVStartsWithBOM(t *testing.T) {
	out := BuildQuotedCSV([]string{"Ad"}, nil)
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("çıktı BOM ile başlamıyor: % x", out[:3])
	}
}

func TestBuildQuotedCSVQuotesEveryField(t *testing.T) {
	out := BuildQuotedCSV(
		[]string{"Ad Soyad", "Kurum"},
		[][]string{{"Gül Çelik", "Şehir Hastanesi"}},
	)
	body := strings.TrimPrefix(string(out), "\xEF\xBB\xBF")

	want := "\"Ad Soyad\",\"Kurum\"\r\n\"Gül Çelik\",\"Şehir Hastanesi\"\r\n"
	if body != want {
		t.Fatalf("CSV gövdesi:\n%q\nbeklenen:\n%q", body, want)
	}
}

func TestBuildQuotedCSVDoublesInnerQuotes(t *testing.T) {
	out := BuildQuotedCSV([]string{"Not"}, [][]string{{`"Kıdemli" Uzman`}})
	if !strings.Contains(string(out), `"""Kıdemli"" Uzman"`) {
		t.Fatalf("iç tırnaklar ikilenmedi: %s", out)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Gül Çelik Öztürk":    "gul-celik-ozturk",
		"IĞDır  Şöleni!":      "igdir-soleni",
		"  --Açılış 2026--  ": "acilis-2026",
		"çğışöü":              "cgisou",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	s := GenerateRandomString(8)
	if len(s) != 8 {
		t.Fatalf("uzunluk %d, want 8", len(s))
	}
	if s == GenerateRandomString(8) && s == GenerateRandomString(8) {
		t.Fatal("ardışık üretimler hep aynı")
	}
}
