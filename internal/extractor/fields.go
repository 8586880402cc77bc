package extractor

import (
	"regexp"
	"strings"
)

// Sinônimos de rótulo por campo. Novos idiomas são acrescentados nestas
// tabelas; as regexes são montadas a partir delas.
var (
	consumptionLabels = []string{"consommation", "puissance absorbée", "power consumption"}
	coolingLabels     = []string{"puissance frigorifique", "cooling capacity", "capacity"}
	energyClassLabels = []string{"classe énergétique", "energy class"}
)

var (
	consumptionRe = labeledPowerRe(consumptionLabels)
	coolingRe     = labeledPowerRe(coolingLabels)
	energyClassRe = labeledValueRe(energyClassLabels, `[a-g]\+{0,3}`)

	// "non-inverter" e "non inverter" não contam como presença de inverter.
	nonInverterRe = regexp.MustCompile(`non[\s-]?inverter`)
)

// labeledPowerRe monta a regex "rótulo, separador, número+unidade".
// O valor capturado é entregue ao conversor de unidades.
func labeledPowerRe(labels []string) *regexp.Regexp {
	return regexp.MustCompile(`(?:` + joinLabels(labels) + `)[:\s]*(\d[\d.,]*\s*(?:w|kw|btu)/?h?)`)
}

func labeledValueRe(labels []string, value string) *regexp.Regexp {
	return regexp.MustCompile(`(?:` + joinLabels(labels) + `)[:\s]*(` + value + `)`)
}

func joinLabels(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(quoted, "|")
}

// matchPower busca o primeiro par rótulo/valor no texto e devolve a
// potência em watts. Ausência de par casado é o desfecho normal de
// "não encontrado", não um erro.
func matchPower(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, false
	}
	return ParsePowerToken(m[1])
}

func matchEnergyClass(text string) (string, bool) {
	m := energyClassRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}
