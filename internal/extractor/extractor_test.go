package extractor_test

import (
	"math"
	"testing"

	"acsim/internal/extractor"
	"acsim/internal/model"
)

func TestExtractConsumption(t *testing.T) {
	spec := extractor.Extract("Consommation: 850 W")
	if spec.Consumption == nil {
		t.Fatal("consumo não encontrado")
	}
	if spec.Consumption.Watts != 850 {
		t.Errorf("consumo = %v, esperado 850", spec.Consumption.Watts)
	}
}

func TestExtractConsumptionAbsent(t *testing.T) {
	spec := extractor.Extract("aparelho compacto e silencioso de 850 W")
	if spec.Consumption != nil {
		t.Errorf("consumo sem rótulo deveria ficar ausente, veio %v", spec.Consumption.Watts)
	}
}

func TestExtractInverterKeyword(t *testing.T) {
	spec := extractor.Extract("Equipado com INVERTER Technology")
	if spec.Inverter != model.Inverter {
		t.Errorf("inverter = %v, esperado %v", spec.Inverter, model.Inverter)
	}

	spec = extractor.Extract("aparelho convencional de janela")
	if spec.Inverter != model.NonInverter {
		t.Errorf("sem a palavra-chave, inverter = %v, esperado %v", spec.Inverter, model.NonInverter)
	}
}

func TestExtractNonInverter(t *testing.T) {
	spec := extractor.Extract("Tecnologia: Non-Inverter")
	if spec.Inverter != model.NonInverter {
		t.Errorf("non-inverter detectado como %v", spec.Inverter)
	}
}

func TestExtractEnergyClass(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Classe énergétique: A+++", "A+++"},
		{"energy class a", "A"},
		{"ENERGY CLASS B+", "B+"},
		{"sem classificação alguma", ""},
	}

	for _, c := range cases {
		spec := extractor.Extract(c.in)
		if spec.EnergyClass != c.want {
			t.Errorf("Extract(%q).EnergyClass = %q, esperado %q", c.in, spec.EnergyClass, c.want)
		}
	}
}

func TestExtractFullDatasheet(t *testing.T) {
	text := "Puissance absorbée: 900W, Puissance frigorifique: 3.5kW, Non-Inverter, Classe énergétique: A++"

	spec := extractor.Extract(text)

	if spec.Consumption == nil || spec.Consumption.Watts != 900 {
		t.Errorf("consumo = %+v, esperado 900 W", spec.Consumption)
	}
	if spec.Cooling == nil || math.Abs(spec.Cooling.Watts-3500) > 0.01 {
		t.Errorf("potência frigorífica = %+v, esperado 3500 W", spec.Cooling)
	}
	if spec.Inverter != model.NonInverter {
		t.Errorf("inverter = %v, esperado %v", spec.Inverter, model.NonInverter)
	}
	if spec.EnergyClass != "A++" {
		t.Errorf("classe = %q, esperado A++", spec.EnergyClass)
	}
	if !spec.Found() {
		t.Error("Found() deveria ser verdadeiro")
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := "Power consumption: 1,2 kW e cooling capacity: 12000 btu/h"

	a := extractor.Extract(text)
	b := extractor.Extract(text)

	if a.Consumption == nil || b.Consumption == nil || a.Consumption.Watts != b.Consumption.Watts {
		t.Errorf("consumo divergente entre chamadas: %+v vs %+v", a.Consumption, b.Consumption)
	}
	if a.Cooling == nil || b.Cooling == nil || a.Cooling.Watts != b.Cooling.Watts {
		t.Errorf("frigorífica divergente entre chamadas: %+v vs %+v", a.Cooling, b.Cooling)
	}
	if a.Inverter != b.Inverter || a.EnergyClass != b.EnergyClass {
		t.Errorf("specs divergentes: %+v vs %+v", a, b)
	}
}

func TestExtractEmptyText(t *testing.T) {
	spec := extractor.Extract("")

	if spec.Consumption != nil || spec.Cooling != nil || spec.EnergyClass != "" {
		t.Errorf("texto vazio deveria render spec vazia, veio %+v", spec)
	}
	if spec.Inverter != model.NonInverter {
		t.Errorf("inverter em texto vazio = %v, esperado %v", spec.Inverter, model.NonInverter)
	}
	if spec.Found() {
		t.Error("Found() deveria ser falso para texto vazio")
	}
}
