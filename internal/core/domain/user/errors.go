package user

import "errors"

var ErrUserDoesNotExist = errors.New("user does not exist")
var ErrSessionDoesNotExist = errors.New("session does not exist")
var ErrInvalidName = errors.New("name is not one of the couple")
