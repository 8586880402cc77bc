package advisor

import (
	"context"
	"fmt"
	"strings"

	"acsim/internal/estimate"
	"acsim/internal/model"
	"acsim/internal/repository"
)

const maxContextModels = 5

// buildContext monta o contexto técnico do assistente a partir do
// histórico de consultas: os modelos citados na mensagem vêm primeiro;
// sem citação, vale o último modelo da sessão.
func buildContext(
	ctx context.Context,
	req ChatRequest,
	specRepo *repository.SpecRepository,
	session *SessionStore,
	priceKWh float64,
) (string, error) {

	lookups, err := specRepo.FindMentioned(ctx, req.Message, maxContextModels)
	if err != nil {
		return "", err
	}

	if len(lookups) > 0 {
		session.SetLastModel(req.SessionID, lookups[0].ModelName)
	} else if last, err := session.GetLastModel(req.SessionID); err == nil && last != "" {
		lookups, _ = specRepo.FindMentioned(ctx, last, 1)
	}

	if len(lookups) == 0 {
		return "Nenhuma especificação conhecida para os modelos citados.", nil
	}

	var sb strings.Builder
	for _, l := range lookups {
		sb.WriteString(lookupToText(l, priceKWh))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// lookupToText formata uma consulta armazenada como bloco de contexto,
// com uma estimativa de referência em 8h/dia por 30 dias.
func lookupToText(l model.Lookup, priceKWh float64) string {
	var sb strings.Builder

	sb.WriteString("Modelo: " + l.ModelName + "\n")
	if l.ConsumptionW > 0 {
		sb.WriteString(fmt.Sprintf("Consumo elétrico: %.0f W\n", l.ConsumptionW))
	}
	if l.CoolingW > 0 {
		sb.WriteString(fmt.Sprintf("Potência frigorífica: %.0f W\n", l.CoolingW))
	}
	if l.Inverter != "" {
		sb.WriteString("Tecnologia: " + l.Inverter + "\n")
	}
	if l.EnergyClass != "" {
		sb.WriteString("Classe energética: " + l.EnergyClass + "\n")
	}

	usage := estimate.Usage{HoursPerDay: 8, DaysPerMonth: 30, PricePerKWh: priceKWh}
	if r, ok := estimate.Compute(l.ConsumptionW, usage); ok {
		sb.WriteString(fmt.Sprintf(
			"Estimativa de referência (8h/dia, 30 dias, %.2f por kWh): %.1f kWh/mês, custo %.2f\n",
			priceKWh, r.MonthlyKWh, r.MonthlyCost,
		))
	}

	return sb.String()
}
