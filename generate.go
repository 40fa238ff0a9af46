//go:build ignore

// This program generates combinators.go, one Join, Race and RaceSame
// implementation per supported arity.
// Run it via go generate.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const (
	minArity = 2
	maxArity = 8
)

var words = []string{"two", "three", "four", "five", "six", "seven", "eight"}

var ordinals = []string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth"}

type position struct {
	I       int
	Ordinal string
	Lower   string
}

type arity struct {
	N         int
	Word      string
	Positions []position
}

// Params returns the type parameter list, e.g. "T0, T1, T2".
func (a arity) Params() string {
	s := make([]string, a.N)
	for i := range s {
		s[i] = fmt.Sprintf("T%d", i)
	}
	return strings.Join(s, ", ")
}

// Sig returns the constructor parameter list, e.g. "f0 Future[T0], f1 Future[T1]".
func (a arity) Sig() string {
	s := make([]string, a.N)
	for i := range s {
		s[i] = fmt.Sprintf("f%d Future[T%d]", i, i)
	}
	return strings.Join(s, ", ")
}

// Fs returns the homogeneous constructor parameter names, e.g. "f0, f1, f2".
func (a arity) Fs() string {
	s := make([]string, a.N)
	for i := range s {
		s[i] = fmt.Sprintf("f%d", i)
	}
	return strings.Join(s, ", ")
}

// Musts returns the guarded array elements, e.g. "must(f0), must(f1)".
func (a arity) Musts() string {
	s := make([]string, a.N)
	for i := range s {
		s[i] = fmt.Sprintf("must(f%d)", i)
	}
	return strings.Join(s, ", ")
}

func main() {
	var arities []arity
	for n := minArity; n <= maxArity; n++ {
		a := arity{N: n, Word: words[n-minArity]}
		for i := range n {
			a.Positions = append(a.Positions, position{
				I:       i,
				Ordinal: ordinals[i],
				Lower:   strings.ToLower(ordinals[i]),
			})
		}
		arities = append(arities, a)
	}

	var buf bytes.Buffer
	if err := output.Execute(&buf, arities); err != nil {
		log.Fatal(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("combinators.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}

var output = template.Must(template.New("combinators").Parse(`// Code generated by "go run generate.go"; DO NOT EDIT.

package future
{{range .}}
// A Tuple{{.N}} holds the values of {{.Word}} joined futures in input order.
type Tuple{{.N}}[{{.Params}} any] struct {
{{range .Positions}}	{{.Ordinal}} T{{.I}}
{{end}}}

// Join{{.N}} combines {{.Word}} futures into a single one that completes when
// all of them complete, yielding their values in input order.
//
// The returned future must not be polled again once it has completed.
func Join{{.N}}[{{.Params}} any]({{.Sig}}) Future[Tuple{{.N}}[{{.Params}}]] {
	return &join{{.N}}[{{.Params}}]{
{{range .Positions}}		d{{.I}}: maybeDone[T{{.I}}]{f: must(f{{.I}})},
{{end}}	}
}

type join{{.N}}[{{.Params}} any] struct {
{{range .Positions}}	d{{.I}} maybeDone[T{{.I}}]
{{end}}	done bool
}

func (j *join{{.N}}[{{.Params}}]) Poll() (Tuple{{.N}}[{{.Params}}], bool) {
	if j.done {
		panic("future: polled after completion")
	}
	done := j.d0.poll()
{{range .Positions}}{{if ne .I 0}}	done = j.d{{.I}}.poll() && done
{{end}}{{end}}	if !done {
		return Tuple{{.N}}[{{.Params}}]{}, false
	}
	j.done = true
	return Tuple{{.N}}[{{.Params}}]{
{{range .Positions}}		{{.Ordinal}}: j.d{{.I}}.take(),
{{end}}	}, true
}

// An Either{{.N}} is the result of a [Race{{.N}}]: the value of the winning future,
// tagged with its position.
type Either{{.N}}[{{.Params}} any] struct {
	tag int
{{range .Positions}}	v{{.I}} T{{.I}}
{{end}}}

// Index returns the position of the winning future, counting from zero.
func (e Either{{.N}}[{{.Params}}]) Index() int { return e.tag }
{{$a := .}}{{range .Positions}}
// {{.Ordinal}} returns the value of the {{.Lower}} future and whether it won.
func (e Either{{$a.N}}[{{$a.Params}}]) {{.Ordinal}}() (T{{.I}}, bool) { return e.v{{.I}}, e.tag == {{.I}} }
{{end}}
// Race{{.N}} combines {{.Word}} futures into a single one that completes as soon as
// any of them completes, yielding the value of the winner tagged with its
// position. If several futures become ready on the same poll, the lowest
// position wins.
//
// The losing futures are abandoned: they are never polled again and their
// eventual values, if any, are never observed.
// The returned future must not be polled again once it has completed.
func Race{{.N}}[{{.Params}} any]({{.Sig}}) Future[Either{{.N}}[{{.Params}}]] {
	return &race{{.N}}[{{.Params}}]{
{{range .Positions}}		f{{.I}}: must(f{{.I}}),
{{end}}	}
}

type race{{.N}}[{{.Params}} any] struct {
{{range .Positions}}	f{{.I}} Future[T{{.I}}]
{{end}}	done bool
}

func (r *race{{.N}}[{{.Params}}]) Poll() (Either{{.N}}[{{.Params}}], bool) {
	if r.done {
		panic("future: polled after completion")
	}
{{range .Positions}}	if v, ok := r.f{{.I}}.Poll(); ok {
		r.abandon()
		return Either{{$a.N}}[{{$a.Params}}]{tag: {{.I}}, v{{.I}}: v}, true
	}
{{end}}	return Either{{.N}}[{{.Params}}]{}, false
}

func (r *race{{.N}}[{{.Params}}]) abandon() {
	r.done = true
{{range .Positions}}	r.f{{.I}} = nil
{{end}}}

// RaceSame{{.N}} combines {{.Word}} futures sharing one result type into a single one
// that completes as soon as any of them completes, yielding the value of
// the winner alone. If several futures become ready on the same poll, the
// lowest position wins.
//
// The losing futures are abandoned: they are never polled again and their
// eventual values, if any, are never observed.
// The returned future must not be polled again once it has completed.
func RaceSame{{.N}}[T any]({{.Fs}} Future[T]) Future[T] {
	return &raceSame{{.N}}[T]{
		fs: [{{.N}}]Future[T]{ {{- .Musts -}} },
	}
}

type raceSame{{.N}}[T any] struct {
	fs   [{{.N}}]Future[T]
	done bool
}

func (r *raceSame{{.N}}[T]) Poll() (T, bool) {
	if r.done {
		panic("future: polled after completion")
	}
	for _, f := range r.fs {
		if v, ok := f.Poll(); ok {
			r.done = true
			clear(r.fs[:])
			return v, true
		}
	}
	var zero T
	return zero, false
}
{{end}}`))
