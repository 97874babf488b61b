package list_resources

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DORM-ReservationService/internal/api/handlers"
	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

const msgUnknownCategory = "неизвестная категория ресурсов"

type Handler struct {
	service ResourcesService
	logger  Logger
}

func NewHandler(service ResourcesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/{category}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["category"]

	spec, err := domain.SpecBySlug(slug)
	if err != nil {
		h.logger.Warn("GET /{category} - Unknown category: %s", slug)
		handlers.RespondNotFound(w, msgUnknownCategory)
		return
	}

	result, err := h.service.ListByCategory(r.Context(), spec.Category)
	if err != nil {
		h.logger.Error("GET /{category} - Failed to list resources: category=%s, error=%v", spec.Category, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /{category} - Listed %d resource(s): category=%s", len(result.Resources), spec.Category)
	handlers.RespondJSON(w, http.StatusOK, result)
}
