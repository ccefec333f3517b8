// internal/workload/workload.go
// Package workload defines the built-in units of work the CLI can time.
package workload

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/mwiater/timeit/parse"
)

// Workload is a named, zero-argument unit of work ready to be measured.
type Workload struct {
	Spec string
	Name string
	Arg  int64
	Fn   func()
}

// builders maps workload names to constructors taking the numeric argument
// from the spec string.
var builders = map[string]func(arg int64) func(){
	"sleep": sleepWorkload,
	"spin":  spinWorkload,
	"hash":  hashWorkload,
}

// Resolve parses a "name:arg" spec string and returns the matching workload.
// The numeric argument is parsed best-effort: a missing or malformed arg
// resolves to 0, which makes the workload effectively a no-op. An unknown
// workload name is an error.
func Resolve(spec string) (Workload, error) {
	name := spec
	argText := ""
	if idx := strings.IndexByte(spec, ':'); idx >= 0 {
		name = spec[:idx]
		argText = spec[idx+1:]
	}

	build, ok := builders[name]
	if !ok {
		return Workload{}, fmt.Errorf("unknown workload %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	arg := parse.Int64OrZero(argText)
	return Workload{
		Spec: spec,
		Name: name,
		Arg:  arg,
		Fn:   build(arg),
	}, nil
}

// Names returns the available workload names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sleepWorkload sleeps for arg milliseconds.
func sleepWorkload(arg int64) func() {
	d := time.Duration(arg) * time.Millisecond
	return func() {
		time.Sleep(d)
	}
}

// spinSink keeps the spin loop's work observable so it cannot be elided.
var spinSink int64

// spinWorkload performs arg iterations of integer work.
func spinWorkload(arg int64) func() {
	return func() {
		var acc int64
		for i := int64(0); i < arg; i++ {
			acc += i ^ (i << 1)
		}
		spinSink = acc
	}
}

// hashSink keeps the hash result observable so it cannot be elided.
var hashSink uint64

// hashWorkload hashes a fixed payload arg times.
func hashWorkload(arg int64) func() {
	payload := []byte("timeit hash workload payload")
	return func() {
		h := fnv.New64a()
		for i := int64(0); i < arg; i++ {
			_, _ = h.Write(payload)
		}
		hashSink = h.Sum64()
	}
}
