package milestone

import "errors"

var ErrMilestoneDoesNotExist = errors.New("milestone does not exist")
