package source

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type SearchClient struct {
	Fetcher Fetcher
	BaseURL string // ex: https://www.google.com/search
}

// Search devolve o markup de resultados do buscador para a consulta.
func (c *SearchClient) Search(query string) (string, error) {
	b, err := c.Fetcher.Fetch(c.BaseURL + "?q=" + url.QueryEscape(query))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Host devolve o host do buscador, excluído da varredura de links PDF.
func (c *SearchClient) Host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// PDFLinks varre o markup de resultados atrás de links para documentos
// PDF, ignorando links do próprio buscador. Links de redirecionamento
// são desembrulhados antes de serem devolvidos.
func PDFLinks(html, searchHost string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		lower := strings.ToLower(href)
		if strings.Contains(lower, "pdf") && (searchHost == "" || !strings.Contains(lower, searchHost)) {
			links = append(links, UnwrapRedirect(href))
		}
	})

	return links, nil
}

// UnwrapRedirect extrai a URL de destino de um link de redirecionamento
// do buscador (parâmetro q). Sem wrapper, devolve o link original.
func UnwrapRedirect(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	if q := u.Query().Get("q"); q != "" {
		return q
	}
	return link
}

// ResultsText devolve o texto visível do container principal de
// resultados da busca.
func ResultsText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	sel := doc.Find("#search")
	if sel.Length() == 0 {
		return "", fmt.Errorf("container de resultados ausente")
	}
	return sel.Text(), nil
}
