package session

import "time"

const (
	// maxAutoRetries caps automatic re-attempts of one turn.
	maxAutoRetries = 3

	retryBaseDelay = time.Second
	retryMaxDelay  = 10 * time.Second
)

// RetryDelay returns the automatic-retry backoff for a zero-based retry
// index: 1s, 2s, 4s, ... capped at 10s.
func RetryDelay(retryCount int) time.Duration {
	if retryCount <= 0 {
		return retryBaseDelay
	}

	delay := retryBaseDelay
	for i := 0; i < retryCount; i++ {
		delay *= 2
		if delay > retryMaxDelay {
			return retryMaxDelay
		}
	}
	return delay
}
