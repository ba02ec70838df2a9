package suppliers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id int64) (Supplier, error)
	Create(ctx context.Context, supplier Supplier) (int64, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Supplier, error) {
	query := `SELECT id, nome, cnpj, cidade, COALESCE(telefone, ''), COALESCE(email, ''), created_at FROM fornecedores ORDER BY nome, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Supplier
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.ID, &s.Nome, &s.CNPJ, &s.Cidade, &s.Telefone, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Supplier, error) {
	query := `SELECT id, nome, cnpj, cidade, COALESCE(telefone, ''), COALESCE(email, ''), created_at FROM fornecedores WHERE id = $1`
	var s Supplier
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Nome, &s.CNPJ, &s.Cidade, &s.Telefone, &s.Email, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, shared.NotFound("fornecedor não encontrado")
	}
	return s, err
}

func (r *repository) Create(ctx context.Context, supplier Supplier) (int64, error) {
	query := `INSERT INTO fornecedores (nome, cnpj, cidade, telefone, email, created_at) VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6) RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		strings.TrimSpace(supplier.Nome),
		supplier.CNPJ,
		strings.TrimSpace(supplier.Cidade),
		supplier.Telefone,
		supplier.Email,
		time.Now(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, shared.Duplicate("CNPJ já cadastrado")
		}
		return 0, err
	}
	return id, nil
}
