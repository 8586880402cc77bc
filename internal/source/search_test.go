package source_test

import (
	"strings"
	"testing"

	"acsim/internal/source"
)

func TestPDFLinks(t *testing.T) {
	html := `
	<html><body>
		<a href="https://www.google.com/search?q=cached.pdf">cache do buscador</a>
		<a href="https://files.example.com/datasheet.pdf">Datasheet</a>
		<a href="https://loja.example.com/produto">Página do produto</a>
		<a href="/url?q=https://fabricante.example.com/manual.pdf&amp;sa=U">resultado</a>
	</body></html>`

	links, err := source.PDFLinks(html, "google.com")
	if err != nil {
		t.Fatalf("PDFLinks: %v", err)
	}

	if len(links) != 2 {
		t.Fatalf("esperados 2 links, vieram %d: %v", len(links), links)
	}
	if links[0] != "https://files.example.com/datasheet.pdf" {
		t.Errorf("primeiro link = %q", links[0])
	}
	if links[1] != "https://fabricante.example.com/manual.pdf" {
		t.Errorf("link de redirecionamento não desembrulhado: %q", links[1])
	}
}

func TestUnwrapRedirect(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"/url?q=https://x.example.com/a.pdf&sa=U", "https://x.example.com/a.pdf"},
		{"https://files.example.com/direto.pdf", "https://files.example.com/direto.pdf"},
		{"/url?sa=U", "/url?sa=U"},
	}

	for _, c := range cases {
		if got := source.UnwrapRedirect(c.in); got != c.want {
			t.Errorf("UnwrapRedirect(%q) = %q, esperado %q", c.in, got, c.want)
		}
	}
}

func TestResultsText(t *testing.T) {
	html := `<html><body><div id="search"><p>Consommation: 850 W</p></div></body></html>`

	text, err := source.ResultsText(html)
	if err != nil {
		t.Fatalf("ResultsText: %v", err)
	}
	if !strings.Contains(text, "Consommation: 850 W") {
		t.Errorf("texto do container não extraído: %q", text)
	}
}

func TestResultsTextMissingContainer(t *testing.T) {
	if _, err := source.ResultsText("<html><body><p>sem container</p></body></html>"); err == nil {
		t.Error("container ausente deveria resolver em erro")
	}
}
