package response

import (
	"time"

	"dodoensemble/internal/core/domain/event"
)

type Event struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`
	Time        *string   `json:"time"`
	Title       string    `json:"title"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	IsMystery   bool      `json:"is_mystery"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Event) FromDomainEvent(de event.Event) {
	e.ID = int64(de.ID)
	e.Date = de.Date
	if de.Time.IsPresent {
		e.Time = &de.Time.Value
	}
	e.Title = de.Title
	if de.Location.IsPresent {
		e.Location = &de.Location.Value
	}
	if de.Description.IsPresent {
		e.Description = &de.Description.Value
	}
	e.IsMystery = de.IsMystery
	e.CreatedBy = int64(de.CreatedBy)
	e.CreatedAt = de.CreatedAt
}
