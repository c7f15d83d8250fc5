package pyfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSinkWrite wraps any I/O error reported by the destination sink
// during a render. The underlying error remains reachable through
// [errors.Is] and [errors.As].
var ErrSinkWrite = errors.New("sink write failed")

// Flusher is implemented by sinks that buffer output and can be flushed
// on demand. [bufio.Writer] satisfies it. When the flush option is set
// on a job whose sink does not implement Flusher, flushing is a no-op.
type Flusher interface {
	Flush() error
}

// Printer is a single-use print job: an ordered sequence of
// already-stringified elements plus the four output settings. Build one
// with [New], configure and fill it with the chaining methods, then call
// [Printer.Print] exactly once.
//
// The entry points ([Print], [Debug], and friends) construct and drive a
// Printer internally; use the type directly when the variadic grammar is
// too loose for the call site.
type Printer struct {
	elements []string
	sep      string
	end      string
	sink     io.Writer
	flush    bool
}

// New returns a Printer with the default settings: elements joined by a
// single space, terminated by a newline, written to [os.Stdout], no
// flush.
func New() *Printer {
	return &Printer{
		sep:  " ",
		end:  "\n",
		sink: os.Stdout,
	}
}

// Append pushes one element onto the job. Elements are written in
// insertion order.
func (p *Printer) Append(s string) *Printer {
	p.elements = append(p.elements, s)
	return p
}

// SetSep sets the string written between consecutive elements.
// Default: a single space.
func (p *Printer) SetSep(s string) *Printer {
	p.sep = s
	return p
}

// SetEnd sets the string written after the last element.
// Default: a newline.
func (p *Printer) SetEnd(s string) *Printer {
	p.end = s
	return p
}

// SetSink sets the destination the job renders to.
// Default: [os.Stdout].
func (p *Printer) SetSink(w io.Writer) *Printer {
	p.sink = w
	return p
}

// SetFlush controls whether the sink is flushed after the terminator,
// if it implements [Flusher]. Default: false.
func (p *Printer) SetFlush(on bool) *Printer {
	p.flush = on
	return p
}

// Print renders the job: the first element, then separator+element for
// each remaining element, then the terminator, then an optional flush.
// A job with no elements writes the bare terminator. The first write or
// flush failure aborts the remaining writes and is returned wrapped in
// [ErrSinkWrite]; output already written is not rolled back.
//
// Every call records its outcome as the calling goroutine's last result
// (see [LastResult]).
func (p *Printer) Print() error {
	err := p.render()
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	setLastResult(err)
	return err
}

func (p *Printer) render() error {
	if len(p.elements) == 0 {
		_, err := io.WriteString(p.sink, p.end)
		return err
	}
	if _, err := io.WriteString(p.sink, p.elements[0]); err != nil {
		return err
	}
	for _, e := range p.elements[1:] {
		if _, err := io.WriteString(p.sink, p.sep+e); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(p.sink, p.end); err != nil {
		return err
	}
	if p.flush {
		if f, ok := p.sink.(Flusher); ok {
			return f.Flush()
		}
	}
	return nil
}
