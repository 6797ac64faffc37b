package event

import "errors"

var ErrEventDoesNotExist = errors.New("event does not exist")
var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD form")
var ErrInvalidTime = errors.New("time must be in HH:MM form")
