package pool

import "testing"

func TestDynamic_GetCallsNewFnWhenEmpty(t *testing.T) {
	var created int
	p := NewDynamic(func() interface{} {
		created++
		return created
	})

	got := p.Get().(int)
	if got != 1 {
		t.Fatalf("expected first Get to invoke newFn, got %d", got)
	}
}

func TestDynamic_PutThenGetReusesValue(t *testing.T) {
	p := NewDynamic(func() interface{} { return "fresh" })

	p.Put("reused")
	got := p.Get()
	if got != "reused" {
		t.Fatalf("expected Get to return the Put value, got %v", got)
	}
}
