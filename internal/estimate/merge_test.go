package estimate_test

import (
	"testing"

	"acsim/internal/estimate"
	"acsim/internal/model"
)

func TestMergeAutoWins(t *testing.T) {
	auto := &model.TechnicalSpec{
		Consumption: &model.PowerValue{Watts: 850},
		Inverter:    model.Inverter,
		EnergyClass: "A++",
	}
	manual := model.ManualSpec{ConsumptionW: 900, EnergyClass: "B"}

	merged := estimate.Merge(auto, manual)

	if merged.ConsumptionW != 850 {
		t.Errorf("consumo = %v, o automático (850) deveria vencer", merged.ConsumptionW)
	}
	if merged.EnergyClass != "A++" {
		t.Errorf("classe = %q, a automática (A++) deveria vencer", merged.EnergyClass)
	}
	if merged.Inverter != model.Inverter {
		t.Errorf("inverter = %v, esperado %v", merged.Inverter, model.Inverter)
	}
}

func TestMergeManualFillsAbsent(t *testing.T) {
	auto := &model.TechnicalSpec{Inverter: model.NonInverter}
	manual := model.ManualSpec{ConsumptionW: 900, CoolingW: 3500}

	merged := estimate.Merge(auto, manual)

	if merged.ConsumptionW != 900 {
		t.Errorf("consumo = %v, o manual (900) deveria preencher o ausente", merged.ConsumptionW)
	}
	if merged.CoolingW != 3500 {
		t.Errorf("frigorífica = %v, esperado 3500", merged.CoolingW)
	}
}

func TestMergeWithoutAuto(t *testing.T) {
	manual := model.ManualSpec{ConsumptionW: 750, Inverter: true, EnergyClass: "A"}

	merged := estimate.Merge(nil, manual)

	if merged.ConsumptionW != 750 {
		t.Errorf("consumo = %v, esperado 750", merged.ConsumptionW)
	}
	if merged.Inverter != model.Inverter {
		t.Errorf("inverter manual ignorado: %v", merged.Inverter)
	}
	if merged.EnergyClass != "A" {
		t.Errorf("classe = %q, esperado A", merged.EnergyClass)
	}
	if merged.AutoFound {
		t.Error("AutoFound deveria ser falso sem spec automática")
	}
}

func TestMergeEmptyInputs(t *testing.T) {
	merged := estimate.Merge(nil, model.ManualSpec{})

	if merged.ConsumptionW != 0 || merged.CoolingW != 0 || merged.EnergyClass != "" {
		t.Errorf("campos deveriam ficar sem valor, veio %+v", merged)
	}
	if merged.Inverter != model.NonInverter {
		t.Errorf("inverter = %v, esperado %v", merged.Inverter, model.NonInverter)
	}
}

func TestMergeFieldIndependence(t *testing.T) {
	// Cada campo resolve inteiro para uma fonte; consumo automático não
	// arrasta a frigorífica manual junto.
	auto := &model.TechnicalSpec{
		Consumption: &model.PowerValue{Watts: 600},
		Inverter:    model.NonInverter,
	}
	manual := model.ManualSpec{ConsumptionW: 1000, CoolingW: 2800}

	merged := estimate.Merge(auto, manual)

	if merged.ConsumptionW != 600 {
		t.Errorf("consumo = %v, esperado 600", merged.ConsumptionW)
	}
	if merged.CoolingW != 2800 {
		t.Errorf("frigorífica = %v, esperado 2800", merged.CoolingW)
	}
	if !merged.AutoFound {
		t.Error("AutoFound deveria ser verdadeiro")
	}
}
