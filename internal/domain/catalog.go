package domain

// Default prices, in RMB. Overridable from config.json at startup.
const DefaultTicketPrice = 100

var defaultTablePrices = map[string]float64{
	"Bronze B":   1050,
	"Bronze A":   1100,
	"Silver":     1490,
	"Gold":       2396,
	"Platinum B": 3346,
	"Platinum A": 4524,
}

// tierOrder is the display order of table tiers on the form and dashboard.
var tierOrder = []string{"Bronze B", "Bronze A", "Silver", "Gold", "Platinum B", "Platinum A"}

// Catalog is the static kind/tier -> price table. It is built once at startup
// and never mutated.
type Catalog struct {
	ticketPrice float64
	tablePrices map[string]float64
	tiers       []string
}

// NewCatalog builds a catalog from the given ticket price and table tier
// prices. Zero or missing values fall back to the defaults, so a partial
// override from config only touches the tiers it names.
func NewCatalog(ticketPrice float64, tablePrices map[string]float64) *Catalog {
	c := &Catalog{
		ticketPrice: DefaultTicketPrice,
		tablePrices: make(map[string]float64, len(defaultTablePrices)),
		tiers:       tierOrder,
	}
	for tier, price := range defaultTablePrices {
		c.tablePrices[tier] = price
	}
	if ticketPrice > 0 {
		c.ticketPrice = ticketPrice
	}
	for tier, price := range tablePrices {
		if _, known := c.tablePrices[tier]; known && price > 0 {
			c.tablePrices[tier] = price
		}
	}
	return c
}

// DefaultCatalog returns the catalog with the built-in prices.
func DefaultCatalog() *Catalog {
	return NewCatalog(0, nil)
}

// PriceFor returns the required price for the given kind and tier, or false
// when no catalog entry exists. Tickets ignore the tier; tables require one of
// the known tier names.
func (c *Catalog) PriceFor(kind Kind, tier string) (float64, bool) {
	switch kind {
	case KindTicket:
		return c.ticketPrice, true
	case KindTable:
		price, ok := c.tablePrices[tier]
		return price, ok
	default:
		return 0, false
	}
}

// TicketPrice returns the fixed ticket price.
func (c *Catalog) TicketPrice() float64 { return c.ticketPrice }

// Tiers returns the known table tier names in display order.
func (c *Catalog) Tiers() []string {
	tiers := make([]string, len(c.tiers))
	copy(tiers, c.tiers)
	return tiers
}

// TablePrices returns a copy of the tier -> price map.
func (c *Catalog) TablePrices() map[string]float64 {
	prices := make(map[string]float64, len(c.tablePrices))
	for tier, price := range c.tablePrices {
		prices[tier] = price
	}
	return prices
}
