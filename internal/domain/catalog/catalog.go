package catalog

// Service is one entry of the static service catalog. The catalog is supplied
// by configuration and read-only at runtime; prices and durations are display
// text, not billing data.
type Service struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PriceText    string `json:"price_text"`
	DurationText string `json:"duration_text"`
}

type Catalog struct {
	services []Service
	byID     map[string]Service
}

func NewCatalog(services []Service) *Catalog {
	byID := make(map[string]Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return &Catalog{services: services, byID: byID}
}

// Default is the CleanPro offering.
func Default() *Catalog {
	return NewCatalog([]Service{
		{
			ID:           "residencial",
			Title:        "Limpeza Residencial",
			Description:  "Limpeza completa de casas e apartamentos",
			PriceText:    "R$ 120",
			DurationText: "3-4 horas",
		},
		{
			ID:           "comercial",
			Title:        "Limpeza Comercial",
			Description:  "Limpeza de escritórios e estabelecimentos comerciais",
			PriceText:    "R$ 180",
			DurationText: "4-6 horas",
		},
		{
			ID:           "predial",
			Title:        "Limpeza Predial",
			Description:  "Limpeza de condomínios e áreas comuns",
			PriceText:    "R$ 250",
			DurationText: "6-8 horas",
		},
	})
}

func (c *Catalog) List() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Catalog) FindByID(id string) (Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}
