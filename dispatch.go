package pyfmt

import (
	"fmt"
	"io"
	"os"
)

// Option configures one setting on a print job. Options may appear
// anywhere in an entry point's argument list, before, after, or between
// values, and any number of times; the last occurrence of a given option
// wins. Every non-Option argument is treated as a value to print.
type Option func(*Printer)

// Sep sets the separator written between consecutive values.
// Default: a single space.
func Sep(s string) Option {
	return func(p *Printer) { p.SetSep(s) }
}

// End sets the terminator written after the last value.
// Default: a newline.
func End(s string) Option {
	return func(p *Printer) { p.SetEnd(s) }
}

// File redirects output to w instead of the entry point's default sink.
func File(w io.Writer) Option {
	return func(p *Printer) { p.SetSink(w) }
}

// Flush controls whether the sink is flushed after the terminator, if
// it implements [Flusher]. Default: false.
func Flush(on bool) Option {
	return func(p *Printer) { p.SetFlush(on) }
}

// dispatch scans args left to right: Options configure the job, every
// other value is converted and appended. The job then renders exactly
// once.
func dispatch(conv func(any) string, sink io.Writer, args []any) error {
	p := New().SetSink(sink)
	for _, arg := range args {
		if opt, ok := arg.(Option); ok {
			opt(p)
			continue
		}
		p.Append(conv(arg))
	}
	return p.Print()
}

// display converts a value with fmt's %v verb, which honors
// [fmt.Stringer] and renders a typed-nil Stringer as <nil> instead of
// letting the nil receiver crash.
func display(v any) string {
	return fmt.Sprintf("%v", v)
}

// debug converts a value with fmt's %#v verb: strings come out quoted
// and composite values carry their type structure.
func debug(v any) string {
	return fmt.Sprintf("%#v", v)
}

// Print writes args to [os.Stdout] with Python's print semantics:
// values are space-separated and newline-terminated, and [Sep], [End],
// [File], and [Flush] options adjust the job from any position in the
// argument list.
//
//	pyfmt.Print("Hello", "World")                              // Hello World
//	pyfmt.Print("Hello", "World", pyfmt.Sep(", "), pyfmt.End("!\n")) // Hello, World!
func Print(args ...any) error {
	return dispatch(display, os.Stdout, args)
}

// MustPrint is [Print] but panics if the render fails.
func MustPrint(args ...any) {
	if err := Print(args...); err != nil {
		panic(err)
	}
}

// Debug is [Print] with debug formatting: each value is converted with
// %#v, which is the right flavor for inspecting strings and composite
// data structures.
//
//	pyfmt.Debug([]int{1, 2, 3}) // []int{1, 2, 3}
func Debug(args ...any) error {
	return dispatch(debug, os.Stdout, args)
}

// MustDebug is [Debug] but panics if the render fails.
func MustDebug(args ...any) {
	if err := Debug(args...); err != nil {
		panic(err)
	}
}

// Eprint is [Print] directed at [os.Stderr]. An explicit [File] option
// still wins.
func Eprint(args ...any) error {
	return dispatch(display, os.Stderr, args)
}

// MustEprint is [Eprint] but panics if the render fails.
func MustEprint(args ...any) {
	if err := Eprint(args...); err != nil {
		panic(err)
	}
}

// Edebug is [Debug] directed at [os.Stderr]. An explicit [File] option
// still wins.
func Edebug(args ...any) error {
	return dispatch(debug, os.Stderr, args)
}

// MustEdebug is [Edebug] but panics if the render fails.
func MustEdebug(args ...any) {
	if err := Edebug(args...); err != nil {
		panic(err)
	}
}
