package pyfmt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

type nilLabel struct{ name string }

func (l *nilLabel) String() string { return l.name }

func TestGoidStableWithinGoroutine(t *testing.T) {
	t.Parallel()
	first := goid()
	second := goid()
	assert.Equal(t, first, second)
	assert.NotZero(t, first)
}

func TestGoidDiffersAcrossGoroutines(t *testing.T) {
	t.Parallel()
	other := make(chan uint64, 1)
	go func() { other <- goid() }()
	assert.NotEqual(t, goid(), <-other)
}

func TestSetLastResultClearsOnSuccess(t *testing.T) {
	t.Parallel()
	setLastResult(errInternalWrite)
	_, ok := lastResults.Load(goid())
	require.True(t, ok)
	setLastResult(nil)
	// A successful render removes the slot entirely rather than storing nil.
	_, ok = lastResults.Load(goid())
	assert.False(t, ok)
}

func TestDisplayConversion(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"string": {value: "hi", want: "hi"},
		"int":    {value: 42, want: "42"},
		"float":  {value: 3.5, want: "3.5"},
		"bool":   {value: true, want: "true"},
		"nil":    {value: nil, want: "<nil>"},
		"slice":  {value: []int{1, 2}, want: "[1 2]"},
		"typed nil stringer": {
			value: (*nilLabel)(nil),
			want:  "<nil>",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, display(tt.value))
		})
	}
}

func TestDebugConversion(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `"hi"`, debug("hi"))
	assert.Equal(t, "[]int{1, 2}", debug([]int{1, 2}))
}

func TestDispatchRendersOnce(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := dispatch(display, &buf, []any{"a", Sep("-"), "b"})
	require.NoError(t, err)
	assert.Equal(t, "a-b\n", buf.String())
}

func TestRenderSingleWritePerSegment(t *testing.T) {
	t.Parallel()
	// Separator and element go out as one write, so a failing sink sees
	// exactly one call for the first element and one for each pair.
	p := New().SetSink(&errWriterInternal{}).Append("a").Append("b")
	err := p.Print()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSinkWrite)
	// Clean up the failure recorded on this goroutine.
	setLastResult(nil)
}
