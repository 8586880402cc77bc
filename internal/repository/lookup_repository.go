package repository

import (
	"database/sql"

	"acsim/internal/model"
)

type LookupRepository struct {
	DB *sql.DB
}

// Save grava o resultado de uma consulta, substituindo o registro
// anterior do mesmo modelo.
func (r *LookupRepository) Save(l model.Lookup) error {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM spec_lookups WHERE model_name = $1)", l.ModelName).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		_, err = r.DB.Exec(`
			UPDATE spec_lookups
			SET source_stage = $1, source_url = $2, consumption_w = $3,
			    cooling_w = $4, inverter = $5, energy_class = $6, specs_found = $7
			WHERE model_name = $8
		`, l.SourceStage, l.SourceURL, l.ConsumptionW, l.CoolingW, l.Inverter, l.EnergyClass, l.SpecsFound, l.ModelName)
	} else {
		_, err = r.DB.Exec(`
			INSERT INTO spec_lookups
			(id, model_name, source_stage, source_url, consumption_w, cooling_w, inverter, energy_class, specs_found)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, l.ID, l.ModelName, l.SourceStage, l.SourceURL, l.ConsumptionW, l.CoolingW, l.Inverter, l.EnergyClass, l.SpecsFound)
	}

	return err
}

func (r *LookupRepository) List() ([]model.Lookup, error) {
	rows, err := r.DB.Query(`
		SELECT id, model_name, source_stage, source_url, consumption_w, cooling_w, inverter, energy_class, specs_found
		FROM spec_lookups
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Lookup
	for rows.Next() {
		var l model.Lookup
		rows.Scan(&l.ID, &l.ModelName, &l.SourceStage, &l.SourceURL, &l.ConsumptionW, &l.CoolingW, &l.Inverter, &l.EnergyClass, &l.SpecsFound)
		list = append(list, l)
	}

	return list, nil
}
