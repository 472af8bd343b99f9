package utils

import (
	"bytes"
	"strings"
)

// utf8BOM Excel'in Türkçe karakterleri doğru açması için dosya başına yazılır.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BuildQuotedCSV her alanı çift tırnağa sararak UTF-8 BOM'lu CSV üretir.
// encoding/csv yalnızca gerektiğinde tırnaklar; dışa aktarım biçimi her
// alan için tırnak istediğinden satırlar elle yazılır.
func BuildQuotedCSV(header []string, rows [][]string) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
			buf.WriteByte('"')
		}
		buf.WriteString("\r\n")
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
	return buf.Bytes()
}
