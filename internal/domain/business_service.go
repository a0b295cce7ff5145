package domain

// BusinessService é um serviço oferecido no catálogo do dashboard
type BusinessService struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	PriceLabel  string   `json:"price_label"`
}
