package response

import (
	"time"

	"dodoensemble/internal/core/domain/milestone"
)

type Milestone struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *Milestone) FromDomainMilestone(dm milestone.Milestone) {
	m.ID = int64(dm.ID)
	m.Date = dm.Date
	m.Title = dm.Title
	if dm.Description.IsPresent {
		m.Description = &dm.Description.Value
	}
	m.CreatedBy = int64(dm.CreatedBy)
	m.CreatedAt = dm.CreatedAt
}
