package nonce

import (
	"strconv"
	"time"
)

// UnixSecondNonce generates nonce values from the wall clock in whole Unix seconds.
//
// Two calls within the same second return the same value. There is no local counter:
// the remote side decides whether a repeated nonce is acceptable.
type UnixSecondNonce struct {
	now func() time.Time
}

// GetString returns the current Unix time in seconds as a decimal string.
func (ng *UnixSecondNonce) GetString() string {
	return strconv.FormatInt(ng.GetInt64(), 10)
}

// GetInt64 returns the current Unix time in seconds.
func (ng *UnixSecondNonce) GetInt64() int64 {
	return ng.now().Unix()
}

func NewUnixSecondNonce() *UnixSecondNonce {
	return &UnixSecondNonce{now: time.Now}
}

// NewUnixSecondNonceWithClock uses the given clock function instead of time.Now.
func NewUnixSecondNonceWithClock(now func() time.Time) *UnixSecondNonce {
	if now == nil {
		now = time.Now
	}

	return &UnixSecondNonce{now: now}
}
