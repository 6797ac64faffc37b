package event

import (
	"time"

	c "dodoensemble/internal/core/domain/common"
	"dodoensemble/internal/core/domain/user"
)

type ID int64

const DateLayout = "2006-01-02"
const TimeLayout = "15:04"

// Event is a shared agenda entry. Date and Time are kept in the naive
// string forms the clients send ("2006-01-02" / "15:04"); no time zone
// conversion is ever applied to them.
type Event struct {
	ID          ID
	Date        string
	Time        c.Optional[string]
	Title       string
	Location    c.Optional[string]
	Description c.Optional[string]
	// IsMystery hides the title from the partner until the day of the
	// event. Concealment is a client concern, reminders ignore it.
	IsMystery bool
	CreatedBy user.ID
	CreatedAt time.Time
}

// StartsAt combines Date and Time into an instant in the given location.
// It must only be called for events that have a time.
func (e Event) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+e.Time.Value, loc)
}

func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func ValidateTime(t string) error {
	if _, err := time.Parse(TimeLayout, t); err != nil {
		return ErrInvalidTime
	}
	return nil
}
