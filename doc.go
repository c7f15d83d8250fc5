// Package pyfmt reproduces Python's print() semantics in Go: values are
// converted to strings, joined with a configurable separator, followed
// by a configurable terminator, and written to a destination sink with
// an optional flush.
//
// The central entry points are [Print], [Debug], [Eprint], and [Edebug],
// which accept variadic arguments of any type. Arguments are scanned
// left to right: an [Option] value configures the job, anything else is
// printed. Options may appear in any position and any number of times;
// the last occurrence of a given option wins, while plain values keep
// their call order.
//
//	pyfmt.Print("Hello", "World")                   // Hello World
//	pyfmt.Print("Hello", "World", pyfmt.Sep(", "))  // Hello, World
//	pyfmt.Print(pyfmt.End("!\n"), "Hello", "World") // Hello World!
//
// # Options
//
// The four options mirror the keyword arguments of Python's print:
//
//   - [Sep] — separator between values (default " ")
//   - [End] — terminator after the last value (default "\n")
//   - [File] — destination sink (default per entry point)
//   - [Flush] — flush the sink after the terminator (default false)
//
// Calling an entry point with no values still writes the terminator, so
// pyfmt.Print() emits a blank line exactly as print() does.
//
// # Entry Points
//
// The eight entry points vary along three axes: conversion flavor,
// default sink, and failure behavior. [Print] and [Eprint] convert with
// %v (honoring [fmt.Stringer]); [Debug] and [Edebug] convert with %#v.
// The E-variants default to [os.Stderr]; an explicit [File] option
// overrides any default. Each has a Must sibling ([MustPrint],
// [MustDebug], [MustEprint], [MustEdebug]) that panics instead of
// returning an error.
//
// # Custom Sinks and Flushing
//
// Any [io.Writer] works as a sink:
//
//	var buf bytes.Buffer
//	pyfmt.Print("captured", pyfmt.File(&buf))
//
// Flushing applies to sinks that implement [Flusher], such as
// [bufio.Writer]:
//
//	w := bufio.NewWriter(os.Stdout)
//	pyfmt.Print("Progress:", pyfmt.File(w), pyfmt.End(" "), pyfmt.Flush(true))
//
// # Direct Builder Use
//
// The entry points drive a [Printer] internally. Build one directly when
// the call site wants explicit typing instead of the variadic grammar:
//
//	err := pyfmt.New().
//		Append("Hello").
//		Append("World").
//		SetSep(", ").
//		Print()
//
// # Errors
//
// Write and flush failures are wrapped in [ErrSinkWrite] with the sink's
// error in the chain; no other error kind exists, and converting values
// never fails. The outcome of the most recent render on the calling
// goroutine is also available through [LastResult], which is the escape
// hatch for call sites using the Must variants.
//
// Renders are strictly sequential but perform no locking of their own;
// goroutines sharing one sink need external synchronization.
package pyfmt
