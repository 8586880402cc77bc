package source

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher busca os bytes de uma URL. Os testes injetam implementações
// falsas; em produção é o HTTPFetcher.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewHTTPFetcher aplica o mesmo prazo fixo a toda requisição de saída.
// Estourar o prazo equivale a qualquer outra falha de transporte.
func NewHTTPFetcher(userAgent string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

func (f *HTTPFetcher) Fetch(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d em %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
