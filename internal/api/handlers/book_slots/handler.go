package book_slots

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DORM-ReservationService/internal/api/handlers"
	"github.com/m04kA/DORM-ReservationService/internal/api/middleware"
	"github.com/m04kA/DORM-ReservationService/internal/domain"
	bookSlots "github.com/m04kA/DORM-ReservationService/internal/usecase/book_slots"
)

const (
	msgUnknownCategory     = "неизвестная категория ресурсов"
	msgInvalidResourceID   = "некорректный идентификатор ресурса"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStartTime    = "некорректный формат времени начала, ожидается RFC3339"
	msgInvalidInput        = "некорректные параметры бронирования"
	msgResourceNotFound    = "ресурс не найден"
	msgResourceUnavailable = "ресурс временно недоступен для бронирования"
	msgQuotaExceeded       = "дневной лимит бронирований по этой категории исчерпан"
	msgQuotaExceededFmt    = "дневной лимит бронирований по этой категории исчерпан: вы уже сделали %d бронирований сегодня"
	msgSlotHeldBySelf      = "слот уже забронирован вами"
	msgSlotHeldByOther     = "слот уже занят другим пользователем"
	msgStorageConflict     = "слот был занят одновременно с вашим запросом, повторите попытку"
	msgUnauthorized        = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase BookSlotsUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/{category}/{resourceId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)

	spec, err := domain.SpecBySlug(vars["category"])
	if err != nil {
		h.logger.Warn("POST /{category}/{resourceId}/book - Unknown category: %s", vars["category"])
		handlers.RespondNotFound(w, msgUnknownCategory)
		return
	}

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /{category}/{resourceId}/book - Invalid resource id: %s", vars["resourceId"])
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	var req BookSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /{category}/{resourceId}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, resourceID, spec.Category)
	if err != nil {
		h.logger.Warn("POST /{category}/{resourceId}/book - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSlots.ErrQuotaExceeded):
			h.logger.Warn("POST /{category}/{resourceId}/book - Quota exceeded: user_id=%d, resource_id=%d",
				userID, resourceID)
			msg := msgQuotaExceeded
			var quotaErr *bookSlots.QuotaExceededError
			if errors.As(err, &quotaErr) {
				msg = fmt.Sprintf(msgQuotaExceededFmt, quotaErr.Count)
			}
			handlers.RespondBadRequest(w, msg)

		case errors.Is(err, bookSlots.ErrInvalidInput):
			h.logger.Warn("POST /{category}/{resourceId}/book - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookSlots.ErrResourceNotFound):
			h.logger.Warn("POST /{category}/{resourceId}/book - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, bookSlots.ErrResourceUnavailable):
			h.logger.Warn("POST /{category}/{resourceId}/book - Resource unavailable: resource_id=%d", resourceID)
			handlers.RespondBadRequest(w, msgResourceUnavailable)

		case errors.Is(err, bookSlots.ErrSlotHeldBySelf):
			h.logger.Warn("POST /{category}/{resourceId}/book - Slot held by same user: user_id=%d, resource_id=%d",
				userID, resourceID)
			handlers.RespondError(w, http.StatusConflict, msgSlotHeldBySelf)

		case errors.Is(err, bookSlots.ErrSlotHeldByOther):
			h.logger.Warn("POST /{category}/{resourceId}/book - Slot held by another user: user_id=%d, resource_id=%d",
				userID, resourceID)
			handlers.RespondError(w, http.StatusConflict, msgSlotHeldByOther)

		case errors.Is(err, bookSlots.ErrStorageConflict):
			h.logger.Warn("POST /{category}/{resourceId}/book - Concurrent booking conflict: user_id=%d, resource_id=%d",
				userID, resourceID)
			handlers.RespondError(w, http.StatusConflict, msgStorageConflict)

		default:
			h.logger.Error("POST /{category}/{resourceId}/book - Failed to book slots: user_id=%d, resource_id=%d, error=%v",
				userID, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Outcome == bookSlots.OutcomeCreated {
		status = http.StatusCreated
	}

	h.logger.Info("POST /{category}/{resourceId}/book - Booked %d slot(s): user_id=%d, resource_id=%d, outcome=%s",
		len(result.Slots), userID, resourceID, result.Outcome)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
