package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"acsim/internal/cache"
	"acsim/internal/config"
	"acsim/internal/db"
	"acsim/internal/estimate"
	"acsim/internal/extractor"
	"acsim/internal/model"
	"acsim/internal/observability"
	"acsim/internal/repository"
	"acsim/internal/source"
)

// go run cmd/estimator/main.go -model="Daikin FTXS35K" -hours=8 -days=30
// go run cmd/estimator/main.go -consumption=900 -hours=6
func main() {
	modelName := flag.String("model", "", "Modelo do climatizador (ex: Daikin FTXS35K)")
	hours := flag.Int("hours", 8, "Horas de uso por dia")
	days := flag.Int("days", 30, "Dias de uso por mês")
	price := flag.Float64("price", 0, "Preço do kWh (0 usa o valor da configuração)")
	consumption := flag.Float64("consumption", 0, "Consumo elétrico manual em W")
	cooling := flag.Float64("cooling", 0, "Potência frigorífica manual em W")
	inverter := flag.Bool("inverter", false, "Tecnologia Inverter (entrada manual)")
	class := flag.String("class", "", "Classe energética manual (A+++ a G)")
	flag.Parse()

	if *modelName == "" && *consumption == 0 {
		log.Fatal("Informe -model para busca automática ou -consumption para cálculo manual")
	}

	cfg := config.Load()
	observability.Start(cfg.MetricsPort)

	var specCache *cache.SpecCache
	if cfg.RedisURL != "" {
		specCache = &cache.SpecCache{Client: redis.NewClient(&redis.Options{Addr: cfg.RedisURL})}
	}

	fetcher := source.NewHTTPFetcher(cfg.UserAgent, cfg.FetchTimeout)
	chain := source.NewChain(cfg, fetcher)

	var auto *model.TechnicalSpec
	var fetched *source.Fetched

	if *modelName != "" {
		if specCache != nil {
			if s, ok := specCache.Get(*modelName); ok {
				log.Printf("Especificação de %q servida do cache", *modelName)
				auto = s
			}
		}
		if auto == nil {
			observability.LookupsTotal.Inc()
			if f, ok := chain.Fetch(*modelName); ok {
				spec := extractor.Extract(f.Text)
				auto = &spec
				fetched = f
				countFields(spec)
				if specCache != nil {
					specCache.Set(*modelName, spec)
				}
			} else {
				log.Printf("Nenhuma fonte respondeu para %q; usando apenas valores manuais", *modelName)
			}
		}
	}

	manual := model.ManualSpec{
		ConsumptionW: *consumption,
		CoolingW:     *cooling,
		Inverter:     *inverter,
		EnergyClass:  *class,
	}
	merged := estimate.Merge(auto, manual)

	printSpec(merged)

	priceKWh := cfg.EnergyPriceKWh
	if *price > 0 {
		priceKWh = *price
	}

	usage := estimate.Usage{HoursPerDay: *hours, DaysPerMonth: *days, PricePerKWh: priceKWh}
	if r, ok := estimate.Compute(merged.ConsumptionW, usage); ok {
		fmt.Printf("Consumo diário:  %.2f kWh\n", r.DailyKWh)
		fmt.Printf("Consumo mensal:  %.2f kWh\n", r.MonthlyKWh)
		fmt.Printf("Custo estimado:  %.2f (a %.2f por kWh)\n", r.MonthlyCost, priceKWh)
	} else {
		log.Println("Sem consumo elétrico ou horas de uso; estimativa não calculada")
	}

	if cfg.DatabaseURL != "" && *modelName != "" {
		saveLookup(cfg.DatabaseURL, *modelName, auto, fetched)
	}
}

func countFields(spec model.TechnicalSpec) {
	if spec.Consumption != nil {
		observability.FieldsExtractedTotal.WithLabelValues("consumption").Inc()
	}
	if spec.Cooling != nil {
		observability.FieldsExtractedTotal.WithLabelValues("cooling").Inc()
	}
	if spec.EnergyClass != "" {
		observability.FieldsExtractedTotal.WithLabelValues("energy_class").Inc()
	}
}

func printSpec(m model.MergedSpec) {
	fmt.Println("--- Especificações ---")
	if m.ConsumptionW > 0 {
		fmt.Printf("Consumo elétrico:     %.0f W\n", m.ConsumptionW)
	} else {
		fmt.Println("Consumo elétrico:     N/A")
	}
	if m.CoolingW > 0 {
		fmt.Printf("Potência frigorífica: %.0f W\n", m.CoolingW)
	} else {
		fmt.Println("Potência frigorífica: N/A")
	}
	fmt.Printf("Tecnologia:           %s\n", m.Inverter)
	if m.EnergyClass != "" {
		fmt.Printf("Classe energética:    %s\n", m.EnergyClass)
	}
	fmt.Println("----------------------")
}

func saveLookup(databaseURL, modelName string, auto *model.TechnicalSpec, fetched *source.Fetched) {
	dbConn, err := db.New(databaseURL)
	if err != nil {
		log.Printf("Erro ao conectar no banco de dados: %v", err)
		return
	}
	defer dbConn.Close()

	repo := &repository.LookupRepository{DB: dbConn}

	l := model.Lookup{
		ID:        uuid.New().String(),
		ModelName: modelName,
	}
	if fetched != nil {
		l.SourceStage = fetched.Stage
		l.SourceURL = fetched.URL
	}
	if auto != nil {
		l.SpecsFound = auto.Found()
		l.Inverter = string(auto.Inverter)
		l.EnergyClass = auto.EnergyClass
		if auto.Consumption != nil {
			l.ConsumptionW = auto.Consumption.Watts
		}
		if auto.Cooling != nil {
			l.CoolingW = auto.Cooling.Watts
		}
	}

	if err := repo.Save(l); err != nil {
		log.Printf("Erro ao salvar consulta de %q: %v", modelName, err)
	}
}
