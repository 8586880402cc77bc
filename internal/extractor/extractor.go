// Package extractor transforma texto livre (datasheets, resultados de
// busca) nas especificações técnicas de um climatizador.
package extractor

import (
	"strings"

	"acsim/internal/model"
)

// Extract aplica os quatro extratores de campo sobre o mesmo texto
// normalizado. Cada campo é independente; campos não encontrados ficam
// ausentes e a função sempre devolve uma spec completa. Pura: a mesma
// entrada produz sempre a mesma saída.
func Extract(text string) model.TechnicalSpec {
	text = strings.ToLower(text)

	spec := model.TechnicalSpec{
		Inverter: detectInverter(text),
	}

	if w, ok := matchPower(consumptionRe, text); ok {
		spec.Consumption = &model.PowerValue{Watts: w}
	}
	if w, ok := matchPower(coolingRe, text); ok {
		spec.Cooling = &model.PowerValue{Watts: w}
	}
	if class, ok := matchEnergyClass(text); ok {
		spec.EnergyClass = class
	}

	return spec
}

// detectInverter é um teste de presença de palavra-chave sobre o texto
// inteiro, não um casamento rótulo/valor. O resultado é binário: sem a
// palavra, o aparelho é tratado como convencional.
func detectInverter(text string) model.InverterKind {
	cleaned := nonInverterRe.ReplaceAllString(text, "")
	if strings.Contains(cleaned, "inverter") {
		return model.Inverter
	}
	return model.NonInverter
}
