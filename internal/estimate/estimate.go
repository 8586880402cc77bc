package estimate

// Usage descreve o perfil de uso informado pelo usuário.
type Usage struct {
	HoursPerDay  int
	DaysPerMonth int
	PricePerKWh  float64
}

type Result struct {
	DailyKWh    float64
	MonthlyKWh  float64
	MonthlyCost float64
}

// Compute deriva consumo diário/mensal e custo a partir da potência
// em watts. Sem consumo ou sem horas de uso não há estimativa.
func Compute(consumptionW float64, u Usage) (Result, bool) {
	if consumptionW <= 0 || u.HoursPerDay <= 0 {
		return Result{}, false
	}

	daily := consumptionW * float64(u.HoursPerDay) / 1000
	monthly := daily * float64(u.DaysPerMonth)

	return Result{
		DailyKWh:    daily,
		MonthlyKWh:  monthly,
		MonthlyCost: monthly * u.PricePerKWh,
	}, true
}

// HourlyProfile devolve o perfil de consumo em kW hora a hora, com o
// aparelho ligado nas primeiras hours horas do dia.
func HourlyProfile(consumptionW float64, hours int) [24]float64 {
	var profile [24]float64
	for h := 0; h < 24 && h < hours; h++ {
		profile[h] = consumptionW / 1000
	}
	return profile
}
