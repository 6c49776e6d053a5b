package mapreduce

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReporter_TicksAtPeriod(t *testing.T) {
	ticks := make(chan struct{}, 4)
	r := newReporter(5*time.Millisecond, ticks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.run(ctx)
	defer r.close()

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("expected at least one tick before timeout")
	}
}

func TestReporter_StopsOnClose(t *testing.T) {
	ticks := make(chan struct{}, 1)
	r := newReporter(time.Millisecond, ticks)

	go r.run(context.Background())
	<-ticks // make sure it has actually started ticking

	r.close()
	r.close() // idempotent, must not panic on double-close

	time.Sleep(10 * time.Millisecond)
	// Drain anything buffered from before close, then assert no more ticks
	// show up once the clock has genuinely stopped.
	for {
		select {
		case <-ticks:
			continue
		default:
		}
		break
	}
	select {
	case <-ticks:
		t.Fatal("reporter kept ticking after close")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestReporter_StopsOnContextCancel(t *testing.T) {
	ticks := make(chan struct{}, 1)
	r := newReporter(time.Millisecond, ticks)

	ctx, cancel := context.WithCancel(context.Background())
	go r.run(ctx)
	<-ticks

	cancel()
	time.Sleep(10 * time.Millisecond)

	for {
		select {
		case <-ticks:
			continue
		default:
		}
		break
	}
	select {
	case <-ticks:
		t.Fatal("reporter kept ticking after context cancel")
	case <-time.After(20 * time.Millisecond):
	}
	assert.NotPanics(t, r.close)
}

func TestReporter_DropsTickWhenChannelFull(t *testing.T) {
	ticks := make(chan struct{}) // unbuffered, never read
	r := newReporter(time.Millisecond, ticks)

	ctx, cancel := context.WithCancel(context.Background())
	go r.run(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	// No assertion beyond: this must not deadlock or panic.
}
