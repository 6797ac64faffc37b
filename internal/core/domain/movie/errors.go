package movie

import "errors"

var ErrMovieDoesNotExist = errors.New("movie does not exist")
