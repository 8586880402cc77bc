// Package source obtém texto bruto sobre um modelo de climatizador a
// partir de fontes externas, em uma cadeia fixa de duas etapas:
// datasheet em PDF primeiro, texto de busca HTML em seguida.
package source

import (
	"errors"
	"fmt"
	"log"

	"acsim/internal/config"
	"acsim/internal/observability"
)

// StageResult é o resultado explícito de uma etapa da cadeia. A cadeia
// decide avançar sobre um Err preenchido; nada é engolido em silêncio.
type StageResult struct {
	Text string
	URL  string
	Err  error
}

func (r StageResult) OK() bool { return r.Err == nil }

// Fetched é o texto bruto obtido, com a etapa e a URL de origem.
type Fetched struct {
	Text  string
	Stage string // "pdf" ou "html"
	URL   string
}

type Chain struct {
	Search  *SearchClient
	Decode  func([]byte) (string, error)
	Enabled bool
}

func NewChain(cfg *config.Config, f Fetcher) *Chain {
	return &Chain{
		Search:  &SearchClient{Fetcher: f, BaseURL: cfg.SearchBaseURL},
		Decode:  PDFToText,
		Enabled: cfg.ScrapingEnabled,
	}
}

// Fetch tenta a etapa PDF e, se ela falhar, a etapa HTML. Cada etapa
// roda exatamente uma vez; a falha da última resolve em ausente.
func (c *Chain) Fetch(modelName string) (*Fetched, bool) {
	if !c.Enabled {
		return nil, false
	}

	if r := c.pdfStage(modelName); r.OK() {
		observability.FallbackTotal.WithLabelValues("pdf", "ok").Inc()
		return &Fetched{Text: r.Text, Stage: "pdf", URL: r.URL}, true
	} else {
		observability.FallbackTotal.WithLabelValues("pdf", "failed").Inc()
		log.Printf("Etapa PDF falhou para %q: %v (caindo para busca HTML)", modelName, r.Err)
	}

	if r := c.htmlStage(modelName); r.OK() {
		observability.FallbackTotal.WithLabelValues("html", "ok").Inc()
		return &Fetched{Text: r.Text, Stage: "html", URL: r.URL}, true
	} else {
		observability.FallbackTotal.WithLabelValues("html", "failed").Inc()
		log.Printf("Etapa HTML falhou para %q: %v", modelName, r.Err)
	}

	return nil, false
}

// pdfStage busca datasheets com filetype:pdf, baixa o primeiro
// candidato e decodifica o texto.
func (c *Chain) pdfStage(modelName string) StageResult {
	html, err := c.Search.Search(modelName + " technical specifications filetype:pdf")
	if err != nil {
		return StageResult{Err: fmt.Errorf("busca pdf: %w", err)}
	}

	links, err := PDFLinks(html, c.Search.Host())
	if err != nil {
		return StageResult{Err: fmt.Errorf("varredura de links: %w", err)}
	}
	if len(links) == 0 {
		return StageResult{Err: errors.New("nenhum link pdf nos resultados")}
	}

	b, err := c.Search.Fetcher.Fetch(links[0])
	if err != nil {
		return StageResult{Err: fmt.Errorf("download do pdf: %w", err)}
	}

	text, err := c.Decode(b)
	if err != nil {
		return StageResult{Err: fmt.Errorf("decodificação do pdf: %w", err)}
	}

	return StageResult{Text: text, URL: links[0]}
}

func (c *Chain) htmlStage(modelName string) StageResult {
	html, err := c.Search.Search(modelName)
	if err != nil {
		return StageResult{Err: fmt.Errorf("busca html: %w", err)}
	}

	text, err := ResultsText(html)
	if err != nil {
		return StageResult{Err: err}
	}

	return StageResult{Text: text, URL: c.Search.BaseURL}
}
