package utils

import (
	"strings"
	"time"
	"unicode/utf8"
)

const DisplayTimestampLayout = "02/01/2006 às 15:04"

// FormatDisplayTimestamp formata um timestamp ISO-8601 para exibição no
// histórico. Se não for possível interpretar o valor, devolve o texto original.
func FormatDisplayTimestamp(ts string) string {
	if ts == "" {
		return "Data indisponível"
	}

	normalized := strings.Replace(ts, "Z", "+00:00", 1)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Format(DisplayTimestampLayout)
		}
	}

	return ts
}

// Truncate corta o texto em max caracteres, adicionando "..." quando houve corte.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	return string(runes[:max]) + "..."
}
