package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatThousands formata o valor com separador de milhar ("," ) e no máximo
// duas casas decimais. Ex.: 1234.5 -> "1,234.5"
func FormatThousands(f float64) string {
	f = RoundWithTwoDecimalPlace(f)

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	raw := strconv.FormatFloat(f, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(raw, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	if hasFrac {
		return sign + b.String() + "." + fracPart
	}
	return sign + b.String()
}
