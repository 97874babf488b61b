package list_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/DORM-ReservationService/internal/api/handlers"
	"github.com/m04kA/DORM-ReservationService/internal/domain"
	getBookedSlots "github.com/m04kA/DORM-ReservationService/internal/usecase/get_booked_slots"
)

const (
	msgUnknownCategory   = "неизвестная категория ресурсов"
	msgInvalidResourceID = "некорректный идентификатор ресурса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgResourceNotFound  = "ресурс не найден"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetBookedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/{category}/{resourceId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	spec, err := domain.SpecBySlug(vars["category"])
	if err != nil {
		h.logger.Warn("GET /{category}/{resourceId}/slots - Unknown category: %s", vars["category"])
		handlers.RespondNotFound(w, msgUnknownCategory)
		return
	}

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /{category}/{resourceId}/slots - Invalid resource id: %s", vars["resourceId"])
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /{category}/{resourceId}/slots - Invalid date: %s", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookedSlots.Request{
		ResourceID: resourceID,
		Category:   spec.Category,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookedSlots.ErrResourceNotFound):
			h.logger.Warn("GET /{category}/{resourceId}/slots - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getBookedSlots.ErrInvalidInput):
			h.logger.Warn("GET /{category}/{resourceId}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /{category}/{resourceId}/slots - Failed to list slots: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /{category}/{resourceId}/slots - Listed %d slot(s): resource_id=%d",
		len(result.Slots), resourceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
