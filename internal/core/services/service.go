package services

import "context"

// Service is a single application use case. Input and output are plain
// structs so services compose through wrappers (auth, rate limiting).
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
