package domain

import "time"

// ResourceCategory категория бронируемого оборудования
type ResourceCategory string

const (
	CategoryTreadmill     ResourceCategory = "treadmill"
	CategoryCycle         ResourceCategory = "cycle"
	CategoryInduction     ResourceCategory = "induction"
	CategoryPingPongTable ResourceCategory = "ping_pong_table"
	CategoryArcadeMachine ResourceCategory = "arcade_machine"
)

// Resource представляет физическую единицу оборудования в общежитии
// (беговая дорожка, сайкл, индукционная плита, стол для пинг-понга, аркадный автомат)
type Resource struct {
	ID          int64
	Category    ResourceCategory
	IsAvailable bool // false = оборудование выведено из бронирования, существующие брони не затрагиваются

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable возвращает true, если оборудование доступно для новых бронирований
func (r *Resource) IsBookable() bool {
	return r.IsAvailable
}
