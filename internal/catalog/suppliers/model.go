package suppliers

import (
	"time"
)

// Supplier represents a supplier entity, identified partly by a CNPJ that
// is stored digits-only after normalization. Telefone and Email are
// optional contact fields.
type Supplier struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Cidade    string    `json:"cidade"`
	Telefone  string    `json:"telefone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
