package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"acsim/internal/model"
)

const specTTL = 24 * time.Hour

// SpecCache memoiza extrações por nome de modelo. Um acerto dispensa a
// cadeia de fontes inteira; qualquer erro do Redis vira cache miss.
type SpecCache struct {
	Client *redis.Client
}

type cachedSpec struct {
	ConsumptionW *float64 `json:"consumption_w"`
	CoolingW     *float64 `json:"cooling_w"`
	Inverter     string   `json:"inverter"`
	EnergyClass  string   `json:"energy_class"`
}

func specKey(modelName string) string {
	return "spec:" + strings.ToLower(strings.TrimSpace(modelName))
}

func (c *SpecCache) Get(modelName string) (*model.TechnicalSpec, bool) {
	ctx := context.Background()

	val, err := c.Client.Get(ctx, specKey(modelName)).Result()
	if err != nil {
		return nil, false
	}

	var cs cachedSpec
	if err := json.Unmarshal([]byte(val), &cs); err != nil {
		return nil, false
	}

	spec := model.TechnicalSpec{
		Inverter:    model.InverterKind(cs.Inverter),
		EnergyClass: cs.EnergyClass,
	}
	if spec.Inverter == "" {
		spec.Inverter = model.NonInverter
	}
	if cs.ConsumptionW != nil {
		spec.Consumption = &model.PowerValue{Watts: *cs.ConsumptionW}
	}
	if cs.CoolingW != nil {
		spec.Cooling = &model.PowerValue{Watts: *cs.CoolingW}
	}

	return &spec, true
}

func (c *SpecCache) Set(modelName string, spec model.TechnicalSpec) error {
	ctx := context.Background()

	cs := cachedSpec{
		Inverter:    string(spec.Inverter),
		EnergyClass: spec.EnergyClass,
	}
	if spec.Consumption != nil {
		w := spec.Consumption.Watts
		cs.ConsumptionW = &w
	}
	if spec.Cooling != nil {
		w := spec.Cooling.Watts
		cs.CoolingW = &w
	}

	b, _ := json.Marshal(cs)

	return c.Client.Set(ctx, specKey(modelName), b, specTTL).Err()
}
