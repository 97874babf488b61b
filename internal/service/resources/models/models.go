package models

import (
	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

// ResourceResponse один ресурс в списке категории
type ResourceResponse struct {
	ID            int64  `json:"id"`
	Category      string `json:"category"`
	IsAvailable   bool   `json:"isAvailable"`
	IsOccupiedNow bool   `json:"isOccupiedNow"`
}

// ResourceListResponse список ресурсов категории
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// FromDomainResource конвертирует доменный ресурс в ответ сервиса
func FromDomainResource(res *domain.Resource, occupiedNow bool) ResourceResponse {
	return ResourceResponse{
		ID:            res.ID,
		Category:      string(res.Category),
		IsAvailable:   res.IsAvailable,
		IsOccupiedNow: occupiedNow,
	}
}
