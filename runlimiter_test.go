package mapreduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunLimiter_TryAcquireRespectsCapacity(t *testing.T) {
	l := NewRunLimiter(2)

	t1, ok := l.tryAcquire()
	assert.True(t, ok)
	t2, ok := l.tryAcquire()
	assert.True(t, ok)

	_, ok = l.tryAcquire()
	assert.False(t, ok, "third acquire should fail: limiter is at capacity")

	l.release(t1)
	_, ok = l.tryAcquire()
	assert.True(t, ok, "releasing a slot should free capacity for another acquire")

	l.release(t2)
}

func TestRunLimiter_ZeroCapacityClampsToOne(t *testing.T) {
	l := NewRunLimiter(0)

	_, ok := l.tryAcquire()
	assert.True(t, ok)

	_, ok = l.tryAcquire()
	assert.False(t, ok)
}

func TestRunLimiter_NilReceiverIsUnlimited(t *testing.T) {
	var l *RunLimiter

	for i := 0; i < 100; i++ {
		tok, ok := l.tryAcquire()
		assert.True(t, ok)
		assert.Nil(t, tok)
		l.release(tok)
	}
}

func TestRunLimiter_ReleaseNilTokenIsNoop(t *testing.T) {
	l := NewRunLimiter(1)
	assert.NotPanics(t, func() { l.release(nil) })
}
