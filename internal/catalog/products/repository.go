package products

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (int64, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	query := `SELECT id, nome, categoria, preco, estoque, created_at FROM produtos ORDER BY nome, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Nome, &p.Categoria, &p.Preco, &p.Estoque, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	query := `SELECT id, nome, categoria, preco, estoque, created_at FROM produtos WHERE id = $1`
	var p Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nome, &p.Categoria, &p.Preco, &p.Estoque, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.NotFound("produto não encontrado")
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, product Product) (int64, error) {
	query := `INSERT INTO produtos (nome, categoria, preco, estoque, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		strings.TrimSpace(product.Nome),
		strings.TrimSpace(product.Categoria),
		product.Preco,
		product.Estoque,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
