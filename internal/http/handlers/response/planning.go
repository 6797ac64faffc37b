package response

import (
	"dodoensemble/internal/core/domain/planning"
)

type PlanningEntry struct {
	UserID    int64  `json:"user_id"`
	WeekStart string `json:"week_start"`
	Weekday   int    `json:"weekday"`
	Slot      string `json:"slot"`
}

func (p *PlanningEntry) FromDomainEntry(de planning.Entry) {
	p.UserID = int64(de.UserID)
	p.WeekStart = de.WeekStart
	p.Weekday = de.Weekday
	p.Slot = de.Slot
}
