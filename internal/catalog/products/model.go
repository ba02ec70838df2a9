package products

import (
	"time"
)

// Product represents a sellable item with price and stock level. Products
// are immutable after creation; `id` is the one stable identifier used both
// for creation responses and for order filtering.
type Product struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Categoria string    `json:"categoria"`
	Preco     float64   `json:"preco"`
	Estoque   int       `json:"estoque"`
	CreatedAt time.Time `json:"created_at"`
}
