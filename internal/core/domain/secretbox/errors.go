package secretbox

import "errors"

var ErrNoteDoesNotExist = errors.New("secret note does not exist")
var ErrNoteStillLocked = errors.New("secret note is still locked")
