package planning

import "errors"

var ErrInvalidWeekday = errors.New("weekday must be between 1 and 7")
