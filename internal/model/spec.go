package model

// PowerValue é uma potência já normalizada em watts. Nunca negativa.
type PowerValue struct {
	Watts float64
}

type InverterKind string

const (
	Inverter    InverterKind = "Inverter"
	NonInverter InverterKind = "Non-Inverter"
)

// TechnicalSpec é o resultado estruturado de uma extração.
// Consumption, Cooling e EnergyClass podem estar ausentes (nil / "");
// Inverter sempre resolve para um dos dois valores.
type TechnicalSpec struct {
	Consumption *PowerValue
	Cooling     *PowerValue
	Inverter    InverterKind
	EnergyClass string
}

// Found indica se a extração encontrou algum dado além da detecção de inverter.
func (s TechnicalSpec) Found() bool {
	return s.Consumption != nil || s.Cooling != nil || s.EnergyClass != ""
}

// ManualSpec são os valores digitados pelo usuário. Zero/vazio significa "não informado".
type ManualSpec struct {
	ConsumptionW float64
	CoolingW     float64
	Inverter     bool
	EnergyClass  string
}

// MergedSpec é derivado de TechnicalSpec + ManualSpec, recalculado a cada mudança.
// ConsumptionW/CoolingW em zero significam "sem valor" para o cálculo.
type MergedSpec struct {
	ConsumptionW float64
	CoolingW     float64
	Inverter     InverterKind
	EnergyClass  string
	AutoFound    bool
}
