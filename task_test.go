package mapreduce

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ygrebnov/mapreduce/sandbox/fake"
)

func TestMapTask_Run(t *testing.T) {
	f := &fake.Factory{
		Map: func(_ context.Context, v Vertex) (Value, error) {
			return ValueOf(v.Get("n").Int() * 2)
		},
	}
	sb, err := f.New(context.Background(), "acct", "", "", "", Null)
	require.NoError(t, err)

	vx := NewVertex([]byte(`{"n": 5}`))
	v, err := (mapTask{vertex: vx}).run(context.Background(), sb)
	require.NoError(t, err)
	assert.Equal(t, "10", string(v.Raw()))
}

func TestMapTask_WrapsFailureAsMapError(t *testing.T) {
	wantErr := errors.New("map blew up")
	f := &fake.Factory{
		Map: func(_ context.Context, v Vertex) (Value, error) { return Value{}, wantErr },
	}
	sb, err := f.New(context.Background(), "acct", "", "", "", Null)
	require.NoError(t, err)

	vx := NewVertex([]byte(`{"n": 1}`))
	_, err = (mapTask{vertex: vx}).run(context.Background(), sb)

	var me *MapError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, vx, me.Vertex)
	assert.ErrorIs(t, err, wantErr)
}

func TestReduceTask_Run(t *testing.T) {
	f := &fake.Factory{
		Reduce: func(_ context.Context, a, b Value) (Value, error) {
			var x, y int
			require.NoError(t, a.Unmarshal(&x))
			require.NoError(t, b.Unmarshal(&y))
			return ValueOf(x + y)
		},
	}
	sb, err := f.New(context.Background(), "acct", "", "", "", Null)
	require.NoError(t, err)

	a, _ := ValueOf(3)
	b, _ := ValueOf(4)
	v, err := (reduceTask{a: a, b: b}).run(context.Background(), sb)
	require.NoError(t, err)
	assert.Equal(t, "7", string(v.Raw()))
}

func TestReduceTask_WrapsFailureAsReduceError(t *testing.T) {
	wantErr := errors.New("reduce blew up")
	f := &fake.Factory{
		Reduce: func(_ context.Context, a, b Value) (Value, error) { return Value{}, wantErr },
	}
	sb, err := f.New(context.Background(), "acct", "", "", "", Null)
	require.NoError(t, err)

	_, err = (reduceTask{}).run(context.Background(), sb)

	var re *ReduceError
	require.ErrorAs(t, err, &re)
	assert.ErrorIs(t, err, wantErr)
}
