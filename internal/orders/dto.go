package orders

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CreateOrderRequest is the typed request body of POST /pedidos.
type CreateOrderRequest struct {
	IDProduto    int64  `json:"id_produto" validate:"required,gt=0"`
	IDFornecedor int64  `json:"id_fornecedor" validate:"required,gt=0"`
	Quantidade   int    `json:"quantidade" validate:"required,gt=0"`
	Data         string `json:"data" validate:"required,datetime=2006-01-02"`
}

// ListFilters are the optional equality predicates of GET /pedidos. Each
// non-nil filter narrows the result; none supplied returns the full set.
type ListFilters struct {
	Produto    *int64
	Fornecedor *int64
	Data       *time.Time
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "IDProduto":
		return "selecione um produto válido"
	case "IDFornecedor":
		return "selecione um fornecedor válido"
	case "Quantidade":
		return "quantidade inválida: deve ser um número maior que zero"
	case "Data":
		return "data inválida: use o formato AAAA-MM-DD"
	default:
		return "campo " + fe.Field() + " inválido"
	}
}
