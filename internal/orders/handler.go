package orders

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/comercial-alfa/comercial-alfa/internal/platform/httpx"
	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

// OrderService is the surface the handler needs from the service layer.
type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (int64, error)
	List(ctx context.Context, filters ListFilters) ([]OrderRow, error)
}

type Handler struct {
	logger      *slog.Logger
	service     OrderService
	validator   *validator.Validate
	idempotency *shared.IdempotencyStore
}

func NewHandler(logger *slog.Logger, service OrderService, idempotency *shared.IdempotencyStore) *Handler {
	return &Handler{
		logger:      logger,
		service:     service,
		validator:   shared.NewValidator(),
		idempotency: idempotency,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	result, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list orders failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if result == nil {
		result = []OrderRow{}
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			httpx.Error(w, http.StatusBadRequest, fieldMessage(fieldErrs[0]))
			return
		}
		httpx.Error(w, http.StatusBadRequest, "requisição inválida")
		return
	}

	key := r.Header.Get("Idempotency-Key")
	if key != "" {
		if _, err := uuid.Parse(key); err != nil {
			httpx.Error(w, http.StatusBadRequest, "Idempotency-Key deve ser um UUID")
			return
		}
		if err := h.idempotency.CheckAndInsert(r.Context(), key, "pedidos"); err != nil {
			httpx.RespondError(w, err)
			return
		}
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		if key != "" {
			_ = h.idempotency.Delete(r.Context(), key)
		}
		h.logger.Error("create order failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Created(w, id)
}

// parseFilters reads the optional ?produto=&fornecedor=&data= query
// parameters. Absent or blank parameters add no predicate.
func parseFilters(r *http.Request) (ListFilters, error) {
	var filters ListFilters
	q := r.URL.Query()

	if raw := q.Get("produto"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return ListFilters{}, shared.Invalid("filtro de produto inválido")
		}
		filters.Produto = &id
	}
	if raw := q.Get("fornecedor"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return ListFilters{}, shared.Invalid("filtro de fornecedor inválido")
		}
		filters.Fornecedor = &id
	}
	if raw := q.Get("data"); raw != "" {
		date, err := time.Parse(DateLayout, raw)
		if err != nil {
			return ListFilters{}, shared.Invalid("filtro de data inválido: use o formato AAAA-MM-DD")
		}
		filters.Data = &date
	}
	return filters, nil
}
