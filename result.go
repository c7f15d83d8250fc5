package pyfmt

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// lastResults holds the most recent render outcome per goroutine.
// Successful renders delete the slot instead of storing nil, so only
// goroutines whose latest render failed occupy an entry.
var lastResults sync.Map // goroutine id -> error

// LastResult returns the outcome of the most recent render performed by
// the calling goroutine: nil on a goroutine that has not rendered yet,
// or whose most recent render succeeded, otherwise the error that
// render returned. Renders on other goroutines never affect it.
//
// It exists for fire-and-forget call sites using the Must variants that
// still want to inspect the outcome afterward.
//
// A recorded failure is retained until a later successful render on the
// same goroutine clears it, even if the goroutine has since exited.
func LastResult() error {
	if v, ok := lastResults.Load(goid()); ok {
		return v.(error)
	}
	return nil
}

func setLastResult(err error) {
	if err == nil {
		lastResults.Delete(goid())
		return
	}
	lastResults.Store(goid(), err)
}

// goid extracts the calling goroutine's id from the runtime.Stack
// header, which reads "goroutine 123 [running]:". Slower than the
// unsafe runtime-internal shortcuts, but well-defined.
func goid() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	if i := bytes.IndexByte(buf, ' '); i >= 0 {
		buf = buf[:i]
	}
	id, _ := strconv.ParseUint(string(buf), 10, 64)
	return id
}
