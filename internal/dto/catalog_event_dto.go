// FILE: internal/dto/catalog_event_dto.go
// Message payload published on the catalog events topic after each
// successful mutation.
package dto

import "github.com/google/uuid"

type CatalogChangedMessage struct {
	EventId  uuid.UUID `json:"event_id"`
	Entity   string    `json:"entity"` // template, feature, link
	Action   string    `json:"action"` // created, updated, deleted
	EntityId uint64    `json:"entity_id"`
}
