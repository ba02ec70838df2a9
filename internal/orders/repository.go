package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

type Repository interface {
	Create(ctx context.Context, order Order) (int64, error)
	List(ctx context.Context, filters ListFilters) ([]OrderRow, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, order Order) (int64, error) {
	query := `INSERT INTO pedidos (id_produto, id_fornecedor, quantidade, data, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		order.IDProduto,
		order.IDFornecedor,
		order.Quantidade,
		order.Data,
		time.Now(),
	).Scan(&id)
	if err != nil {
		// The service checks both references before inserting, but the rows
		// can vanish between check and insert. The foreign keys are the
		// authoritative guard.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			switch pgErr.ConstraintName {
			case "pedidos_id_produto_fkey":
				return 0, shared.NotFound("produto não encontrado")
			case "pedidos_id_fornecedor_fkey":
				return 0, shared.NotFound("fornecedor não encontrado")
			}
			return 0, shared.NotFound("produto ou fornecedor não encontrado")
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]OrderRow, error) {
	query, args := buildListQuery(filters)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []OrderRow
	for rows.Next() {
		var row OrderRow
		var date time.Time
		if err := rows.Scan(&row.ID, &row.ProdutoNome, &row.FornecedorNome, &row.Quantidade, &date); err != nil {
			return nil, err
		}
		row.Data = date.Format(DateLayout)
		result = append(result, row)
	}
	return result, rows.Err()
}

// buildListQuery composes the join with one ANDed equality predicate per
// supplied filter, using positional args.
func buildListQuery(filters ListFilters) (string, []any) {
	query := `
		SELECT ped.id, prod.nome AS produto_nome, forn.nome AS fornecedor_nome, ped.quantidade, ped.data
		FROM pedidos AS ped
		JOIN produtos AS prod ON ped.id_produto = prod.id
		JOIN fornecedores AS forn ON ped.id_fornecedor = forn.id
		WHERE 1=1`
	var args []any

	if filters.Produto != nil {
		args = append(args, *filters.Produto)
		query += fmt.Sprintf(" AND ped.id_produto = $%d", len(args))
	}
	if filters.Fornecedor != nil {
		args = append(args, *filters.Fornecedor)
		query += fmt.Sprintf(" AND ped.id_fornecedor = $%d", len(args))
	}
	if filters.Data != nil {
		args = append(args, *filters.Data)
		query += fmt.Sprintf(" AND ped.data = $%d", len(args))
	}

	query += " ORDER BY ped.data DESC, ped.id DESC"
	return query, args
}
