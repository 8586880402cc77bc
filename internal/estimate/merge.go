// Package estimate combina especificações automáticas e manuais e
// deriva os números de consumo e custo exibidos ao usuário.
package estimate

import "acsim/internal/model"

// Merge resolve cada campo de forma independente: o valor automático
// vence quando presente, senão vale o manual, senão ausente. Zero ou
// vazio no manual significa "não informado", nunca um erro. O resultado
// é derivado: recalculado a cada mudança em qualquer entrada.
func Merge(auto *model.TechnicalSpec, manual model.ManualSpec) model.MergedSpec {
	merged := model.MergedSpec{
		ConsumptionW: manual.ConsumptionW,
		CoolingW:     manual.CoolingW,
		EnergyClass:  manual.EnergyClass,
		Inverter:     model.NonInverter,
	}
	if manual.Inverter {
		merged.Inverter = model.Inverter
	}

	if auto == nil {
		return merged
	}
	merged.AutoFound = auto.Found()

	if auto.Consumption != nil {
		merged.ConsumptionW = auto.Consumption.Watts
	}
	if auto.Cooling != nil {
		merged.CoolingW = auto.Cooling.Watts
	}
	// Inverter sempre resolve na extração; quando há spec automática,
	// ela decide o campo por inteiro.
	merged.Inverter = auto.Inverter
	if auto.EnergyClass != "" {
		merged.EnergyClass = auto.EnergyClass
	}

	return merged
}
