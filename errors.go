package sm2

import "errors"

// Sentinel errors for the sm2 package.
// Use errors.Is to check: errors.Is(err, sm2.ErrCardMismatch)
var (
	ErrInvalidTrend         = errors.New("sm2: invalid difficulty trend")
	ErrInvalidFeedbackLevel = errors.New("sm2: invalid feedback level")
	ErrCardMismatch         = errors.New("sm2: card ID mismatch in replay")
)
