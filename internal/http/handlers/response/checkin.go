package response

import (
	"time"

	"dodoensemble/internal/core/domain/checkin"
)

type Checkin struct {
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	Answer    bool      `json:"answer"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Checkin) FromDomainCheckin(dc checkin.Checkin) {
	c.UserID = int64(dc.UserID)
	c.Date = dc.Date
	c.Answer = dc.Answer
	c.UpdatedAt = dc.UpdatedAt
}
