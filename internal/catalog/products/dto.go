package products

import "github.com/go-playground/validator/v10"

// ProductForm is the typed request body of POST /produtos.
type ProductForm struct {
	Nome      string  `json:"nome" validate:"required"`
	Categoria string  `json:"categoria" validate:"required"`
	Preco     float64 `json:"preco" validate:"required,gt=0"`
	Estoque   int     `json:"estoque" validate:"gte=0"`
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Nome":
		return "nome do produto é obrigatório"
	case "Categoria":
		return "categoria é obrigatória"
	case "Preco":
		return "preço inválido: deve ser um número maior que zero"
	case "Estoque":
		return "estoque inválido: não pode ser negativo"
	default:
		return "campo " + fe.Field() + " inválido"
	}
}
