package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryDelayDoublesAndCaps(t *testing.T) {
	cases := []struct {
		retryCount int
		want       time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 10 * time.Second},
		{10, 10 * time.Second},
		{-1, time.Second},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RetryDelay(tc.retryCount), "retryCount=%d", tc.retryCount)
	}
}
