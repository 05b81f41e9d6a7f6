package subscription

import "errors"

var (
	ErrSelfSubscription      = errors.New("cannot subscribe to yourself")
	ErrDuplicateSubscription = errors.New("already subscribed to this author")
	ErrNotFound              = errors.New("subscription not found")
)
