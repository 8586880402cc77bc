package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// Fatores de conversão para watts. Novas unidades entram aqui, não no código.
var unitToWatts = map[string]float64{
	"w":   1,
	"kw":  1000,
	"btu": 0.29307107,
}

var powerTokenRe = regexp.MustCompile(`(?i)(\d+[\d.,]*)\s*(w|kw|btu)/?h?`)

// ConvertPower converte um par número+unidade em watts.
// A vírgula é aceita como separador decimal. Unidade desconhecida
// ou número inválido resolvem para ausente, nunca para erro.
func ConvertPower(value, unit string) (float64, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimSuffix(u, "/h")
	u = strings.TrimSuffix(u, "h")

	factor, ok := unitToWatts[u]
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f * factor, true
}

// ParsePowerToken localiza o primeiro token número+unidade em uma
// string e o converte em watts.
func ParsePowerToken(s string) (float64, bool) {
	m := powerTokenRe.FindStringSubmatch(s)
	if len(m) < 3 {
		return 0, false
	}
	return ConvertPower(m[1], m[2])
}
