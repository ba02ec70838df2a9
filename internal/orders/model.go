package orders

import "time"

// Order links exactly one product and one supplier with a quantity and a
// calendar date. Orders are immutable after creation.
type Order struct {
	ID           int64     `json:"id"`
	IDProduto    int64     `json:"id_produto"`
	IDFornecedor int64     `json:"id_fornecedor"`
	Quantidade   int       `json:"quantidade"`
	Data         time.Time `json:"data"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderRow is a denormalized listing row: the join pulls in the referenced
// product and supplier names. Data is the YYYY-MM-DD calendar form.
type OrderRow struct {
	ID             int64  `json:"id"`
	ProdutoNome    string `json:"produto_nome"`
	FornecedorNome string `json:"fornecedor_nome"`
	Quantidade     int    `json:"quantidade"`
	Data           string `json:"data"`
}

// DateLayout is the wire format of every order date.
const DateLayout = "2006-01-02"
