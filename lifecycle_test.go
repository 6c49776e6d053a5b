package mapreduce

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleOnce_RunsStepsInOrderOnce(t *testing.T) {
	var l lifecycleOnce
	var order []int

	l.run(
		func() { order = append(order, 1) },
		func() { order = append(order, 2) },
	)
	l.run(
		func() { order = append(order, 3) },
	)

	assert.Equal(t, []int{1, 2}, order)
}

func TestLifecycleOnce_ConcurrentCallersRunExactlyOnce(t *testing.T) {
	var l lifecycleOnce
	var count int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.run(func() {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, count)
}
