package model

type Lookup struct {
	ID           string
	ModelName    string
	SourceStage  string // "pdf" ou "html"
	SourceURL    string
	ConsumptionW float64
	CoolingW     float64
	Inverter     string
	EnergyClass  string
	SpecsFound   bool
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
