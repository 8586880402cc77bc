package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"acsim/internal/model"
)

// SpecRepository lê o histórico de consultas para montar o contexto do
// assistente.
type SpecRepository struct {
	DB *pgxpool.Pool
}

func (r *SpecRepository) Recent(ctx context.Context, limit int) ([]model.Lookup, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, model_name, source_stage, source_url, consumption_w, cooling_w, inverter, energy_class, specs_found
		FROM spec_lookups
		WHERE specs_found
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Lookup
	for rows.Next() {
		var l model.Lookup
		if err := rows.Scan(&l.ID, &l.ModelName, &l.SourceStage, &l.SourceURL, &l.ConsumptionW, &l.CoolingW, &l.Inverter, &l.EnergyClass, &l.SpecsFound); err != nil {
			return nil, err
		}
		list = append(list, l)
	}

	return list, rows.Err()
}

// FindMentioned devolve as consultas cujo nome de modelo aparece no
// texto da mensagem do usuário.
func (r *SpecRepository) FindMentioned(ctx context.Context, message string, limit int) ([]model.Lookup, error) {
	all, err := r.Recent(ctx, 200)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(message)
	var matched []model.Lookup
	for _, l := range all {
		if strings.Contains(lower, strings.ToLower(l.ModelName)) {
			matched = append(matched, l)
			if len(matched) >= limit {
				break
			}
		}
	}

	return matched, nil
}
