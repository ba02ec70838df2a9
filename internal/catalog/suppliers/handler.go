package suppliers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/comercial-alfa/comercial-alfa/internal/platform/httpx"
	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

// SupplierService is the surface the handler needs from the service layer.
type SupplierService interface {
	List(ctx context.Context) ([]Supplier, error)
	Create(ctx context.Context, form SupplierForm) (int64, error)
}

type Handler struct {
	logger      *slog.Logger
	service     SupplierService
	validator   *validator.Validate
	idempotency *shared.IdempotencyStore
}

func NewHandler(logger *slog.Logger, service SupplierService, idempotency *shared.IdempotencyStore) *Handler {
	return &Handler{
		logger:      logger,
		service:     service,
		validator:   shared.NewValidator(),
		idempotency: idempotency,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list suppliers failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if result == nil {
		result = []Supplier{}
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var form SupplierForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(form); err != nil {
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
		if err := h.idempotency.CheckAndInsert(r.Context(), key, "fornecedores"); err != nil {
			httpx.RespondError(w, err)
			return
		}
	}

	id, err := h.service.Create(r.Context(), form)
	if err != nil {
		if key != "" {
			_ = h.idempotency.Delete(r.Context(), key)
		}
		h.logger.Error("create supplier failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Created(w, id)
}
