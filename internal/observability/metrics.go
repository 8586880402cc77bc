package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LookupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lookups_total",
			Help: "Total de consultas de especificação executadas",
		},
	)

	FallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fallback_total",
			Help: "Resultados por etapa da cadeia de fontes",
		},
		[]string{"stage", "outcome"},
	)

	FieldsExtractedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fields_extracted_total",
			Help: "Campos técnicos extraídos com sucesso",
		},
		[]string{"field"},
	)
)

func Start(port string) {
	prometheus.MustRegister(LookupsTotal, FallbackTotal, FieldsExtractedTotal)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
