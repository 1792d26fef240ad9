// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// cacheLine is the prefetch granularity in bytes. Every register is 32 bytes,
// so kernels prefetch on every other lane window.
const cacheLine = 64

// LaneSpec describes the lanes of one element type.
type LaneSpec struct {
	Ops      string // ops type name in package lanes, e.g. I32
	Elem     string // Go element type, e.g. int32
	Reg      string // register type name; for integers also the archsimd type
	Lanes    int    // elements per register
	Prefetch int    // prefetch distance in lanes
	Size     int    // element size in bytes
}

// Name is the element type as it appears in generated function names.
func (s LaneSpec) Name() string {
	return strings.ToUpper(s.Elem[:1]) + s.Elem[1:]
}

// Ahead is the prefetch distance in elements.
func (s LaneSpec) Ahead() int { return s.Lanes * s.Prefetch }

// Line is the number of elements per cache line.
func (s LaneSpec) Line() int { return cacheLine / s.Size }

// Integer reports whether the element type is an integer. Integer lanes have no
// register multiply, so their dot kernels accumulate in arrays.
func (s LaneSpec) Integer() bool {
	return strings.HasPrefix(s.Elem, "int") || strings.HasPrefix(s.Elem, "uint")
}

// DefaultSpecs returns the lanes of every element type, in the order of
// lanes.Element. 32-bit lanes use 8 per 256-bit register, 64-bit lanes 4 and
// complex128 lanes 2.
func DefaultSpecs() []LaneSpec {
	return []LaneSpec{
		{Ops: "F32", Elem: "float32", Reg: "Float32x8", Lanes: 8, Prefetch: 4, Size: 4},
		{Ops: "F64", Elem: "float64", Reg: "Float64x4", Lanes: 4, Prefetch: 6, Size: 8},
		{Ops: "I32", Elem: "int32", Reg: "Int32x8", Lanes: 8, Prefetch: 4, Size: 4},
		{Ops: "U32", Elem: "uint32", Reg: "Uint32x8", Lanes: 8, Prefetch: 4, Size: 4},
		{Ops: "I64", Elem: "int64", Reg: "Int64x4", Lanes: 4, Prefetch: 6, Size: 8},
		{Ops: "U64", Elem: "uint64", Reg: "Uint64x4", Lanes: 4, Prefetch: 6, Size: 8},
		{Ops: "C64", Elem: "complex64", Reg: "Complex64x4", Lanes: 4, Prefetch: 6, Size: 8},
		{Ops: "C128", Elem: "complex128", Reg: "Complex128x2", Lanes: 2, Prefetch: 8, Size: 16},
	}
}

// IntSpecs returns the integer subset of specs.
func IntSpecs(specs []LaneSpec) []LaneSpec {
	var out []LaneSpec
	for _, s := range specs {
		if s.Integer() {
			out = append(out, s)
		}
	}
	return out
}

// File is one generated source file.
type File struct {
	Name string
	Src  []byte
}

type fileTemplate struct {
	name  string
	build string
	body  *template.Template
}

// GenerateLanes renders the integer lane implementations of package lanes: the
// shared methods, the array registers and the archsimd registers.
func GenerateLanes(specs []LaneSpec) ([]File, error) {
	return render("lanes", IntSpecs(specs), []fileTemplate{
		{name: "z_int_lanes.go", body: intLanesShared},
		{name: "z_int_lanes_generic.go", build: "!amd64 || !goexperiment.simd", body: intLanesGeneric},
		{name: "z_int_lanes_avx2.go", build: "amd64 && goexperiment.simd", body: intLanesAVX2},
	})
}

// GenerateKernels renders the per-type slice kernels of package vec and the
// generic functions that dispatch to them.
func GenerateKernels(specs []LaneSpec) ([]File, error) {
	return render("vec", specs, []fileTemplate{
		{name: "z_vec_kernels.go", body: vecKernels},
		{name: "z_vec_dispatch.go", body: vecDispatch},
	})
}

func render(pkg string, specs []LaneSpec, tmpls []fileTemplate) ([]File, error) {
	files := make([]File, 0, len(tmpls))
	for _, ft := range tmpls {
		var buf bytes.Buffer
		data := struct {
			Package string
			Build   string
		}{pkg, ft.build}
		if err := headerTemplate.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("%s: execute header: %w", ft.name, err)
		}
		if err := ft.body.Execute(&buf, specs); err != nil {
			return nil, fmt.Errorf("%s: execute template: %w", ft.name, err)
		}

		out, err := imports.Process(ft.name, buf.Bytes(), nil)
		if err != nil {
			return nil, fmt.Errorf("%s: format generated code: %w", ft.name, err)
		}
		files = append(files, File{Name: ft.name, Src: out})
	}
	return files, nil
}

var headerTemplate = template.Must(template.New("header").Parse(`// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
{{if .Build}}
//go:build {{.Build}}
{{end}}
// Code generated by lanegen. DO NOT EDIT.

package {{.Package}}
`))

var intLanesShared = template.Must(template.New("shared").Parse(`{{range .}}
// {{.Ops}} is the lane contract for {{.Elem}}: {{.Lanes}} lanes per register.
type {{.Ops}} struct{}

func ({{.Ops}}) LaneSize() int { return {{.Lanes}} }

func ({{.Ops}}) PrefetchDistance() int { return {{.Prefetch}} }

func ({{.Ops}}) HasHardwareSupport() bool { return hardware }

func ({{.Ops}}) Prefetch(src []{{.Elem}}) { prefetch(src) }
{{end}}`))

var intLanesGeneric = template.Must(template.New("generic").Parse(`{{range .}}
// {{.Reg}} holds {{.Lanes}} {{.Elem}} lanes.
type {{.Reg}} struct{ v [{{.Lanes}}]{{.Elem}} }

func ({{.Ops}}) Load(src []{{.Elem}}) {{.Reg}} { return {{.Reg}}{v: [{{.Lanes}}]{{.Elem}}(src)} }

func ({{.Ops}}) Store(dst []{{.Elem}}, v {{.Reg}}) { *(*[{{.Lanes}}]{{.Elem}})(dst) = v.v }

func ({{.Ops}}) Add(a, b {{.Reg}}) {{.Reg}} {
	for i := range a.v {
		a.v[i] += b.v[i]
	}
	return a
}

func ({{.Ops}}) Sub(a, b {{.Reg}}) {{.Reg}} {
	for i := range a.v {
		a.v[i] -= b.v[i]
	}
	return a
}

// Mul keeps the low bits of each product, matching {{.Elem}} overflow semantics.
func ({{.Ops}}) Mul(a, b {{.Reg}}) {{.Reg}} {
	for i := range a.v {
		a.v[i] *= b.v[i]
	}
	return a
}

func ({{.Ops}}) Broadcast(s {{.Elem}}) {{.Reg}} {
	var r {{.Reg}}
	for i := range r.v {
		r.v[i] = s
	}
	return r
}

func ({{.Ops}}) HorizontalSum(v {{.Reg}}) {{.Elem}} {
	var sum {{.Elem}}
	for _, x := range v.v {
		sum += x
	}
	return sum
}
{{end}}`))

var intLanesAVX2 = template.Must(template.New("avx2").Parse(`
import "simd/archsimd"
{{range .}}
// {{.Reg}} holds {{.Lanes}} {{.Elem}} lanes in a YMM register.
type {{.Reg}} struct{ v archsimd.{{.Reg}} }

func ({{.Ops}}) Load(src []{{.Elem}}) {{.Reg}} {
	return {{.Reg}}{v: archsimd.Load{{.Reg}}Slice(src[:{{.Lanes}}])}
}

func ({{.Ops}}) Store(dst []{{.Elem}}, v {{.Reg}}) { v.v.StoreSlice(dst[:{{.Lanes}}]) }

func ({{.Ops}}) Add(a, b {{.Reg}}) {{.Reg}} { return {{.Reg}}{v: a.v.Add(b.v)} }

func ({{.Ops}}) Sub(a, b {{.Reg}}) {{.Reg}} { return {{.Reg}}{v: a.v.Sub(b.v)} }

// Mul keeps the low bits of each product, matching {{.Elem}} overflow semantics.
// AVX2 has no 64-bit lane multiply, so every integer width multiplies through
// memory.
func ({{.Ops}}) Mul(a, b {{.Reg}}) {{.Reg}} {
	var x, y [{{.Lanes}}]{{.Elem}}
	a.v.StoreSlice(x[:])
	b.v.StoreSlice(y[:])
	for i := range x {
		x[i] *= y[i]
	}
	return {{.Reg}}{v: archsimd.Load{{.Reg}}Slice(x[:])}
}

func ({{.Ops}}) Broadcast(s {{.Elem}}) {{.Reg}} {
	var x [{{.Lanes}}]{{.Elem}}
	for i := range x {
		x[i] = s
	}
	return {{.Reg}}{v: archsimd.Load{{.Reg}}Slice(x[:])}
}

func ({{.Ops}}) HorizontalSum(v {{.Reg}}) {{.Elem}} {
	var x [{{.Lanes}}]{{.Elem}}
	v.v.StoreSlice(x[:])
	var sum {{.Elem}}
	for _, e := range x {
		sum += e
	}
	return sum
}
{{end}}`))

var vecKernels = template.Must(template.New("kernels").Parse(`
import "github.com/ajroetker/linalg/lanes"
{{range .}}
// AddTo{{.Name}} computes dst[i] = a[i] + b[i] with lanes.{{.Ops}} over the
// shortest of the three slices.
func AddTo{{.Name}}(dst, a, b []{{.Elem}}) {
	var ops lanes.{{.Ops}}
	n := min(len(dst), len(a), len(b))

	var i int
	for i = 0; i+{{.Lanes}} <= n; i += {{.Lanes}} {
		if p := i + {{.Ahead}}; i%{{.Line}} == 0 && p < n {
			ops.Prefetch(a[p:])
			ops.Prefetch(b[p:])
			ops.Prefetch(dst[p:])
		}
		ops.Store(dst[i:], ops.Add(ops.Load(a[i:]), ops.Load(b[i:])))
	}

	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// SubTo{{.Name}} computes dst[i] = a[i] - b[i] with lanes.{{.Ops}} over the
// shortest of the three slices.
func SubTo{{.Name}}(dst, a, b []{{.Elem}}) {
	var ops lanes.{{.Ops}}
	n := min(len(dst), len(a), len(b))

	var i int
	for i = 0; i+{{.Lanes}} <= n; i += {{.Lanes}} {
		if p := i + {{.Ahead}}; i%{{.Line}} == 0 && p < n {
			ops.Prefetch(a[p:])
			ops.Prefetch(b[p:])
			ops.Prefetch(dst[p:])
		}
		ops.Store(dst[i:], ops.Sub(ops.Load(a[i:]), ops.Load(b[i:])))
	}

	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// AddInPlace{{.Name}} computes dst[i] += s[i].
func AddInPlace{{.Name}}(dst, s []{{.Elem}}) { AddTo{{.Name}}(dst, dst, s) }

// SubInPlace{{.Name}} computes dst[i] -= s[i].
func SubInPlace{{.Name}}(dst, s []{{.Elem}}) { SubTo{{.Name}}(dst, dst, s) }
{{if .Integer}}
// Dot{{.Name}} returns the dot product of a and b over the shorter slice.
// Products accumulate in {{.Lanes}} lane sums that are reduced once at the end.
func Dot{{.Name}}(a, b []{{.Elem}}) {{.Elem}} {
	var ops lanes.{{.Ops}}
	n := min(len(a), len(b))

	var acc [{{.Lanes}}]{{.Elem}}
	var i int
	for i = 0; i+{{.Lanes}} <= n; i += {{.Lanes}} {
		if p := i + {{.Ahead}}; i%{{.Line}} == 0 && p < n {
			ops.Prefetch(a[p:])
			ops.Prefetch(b[p:])
		}
		x, y := (*[{{.Lanes}}]{{.Elem}})(a[i:]), (*[{{.Lanes}}]{{.Elem}})(b[i:])
		for j := range acc {
			acc[j] += x[j] * y[j]
		}
	}

	var result {{.Elem}}
	for _, s := range acc {
		result += s
	}
	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}
{{else}}
// Dot{{.Name}} returns the dot product of a and b over the shorter slice.
// Products accumulate in a register that is reduced once at the end, so the
// result may differ from a sequential sum in the last bits.
func Dot{{.Name}}(a, b []{{.Elem}}) {{.Elem}} {
	var ops lanes.{{.Ops}}
	n := min(len(a), len(b))

	sum := ops.Broadcast(0)
	var i int
	for i = 0; i+{{.Lanes}} <= n; i += {{.Lanes}} {
		if p := i + {{.Ahead}}; i%{{.Line}} == 0 && p < n {
			ops.Prefetch(a[p:])
			ops.Prefetch(b[p:])
		}
		sum = ops.Add(sum, ops.Mul(ops.Load(a[i:]), ops.Load(b[i:])))
	}

	result := ops.HorizontalSum(sum)
	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}
{{end}}{{end}}`))

var vecDispatch = template.Must(template.New("dispatch").Parse(`
import "github.com/ajroetker/linalg/lanes"

// AddTo computes dst[i] = a[i] + b[i] over the shortest of the three slices.
// It runs the lane kernel for T when lanes.HasHardwareSupport reports a vector
// unit and ScalarAddTo otherwise.
func AddTo[T lanes.Element](dst, a, b []T) {
	if !lanes.HasHardwareSupport() {
		ScalarAddTo(dst, a, b)
		return
	}
	switch dst := any(dst).(type) {
{{- range .}}
	case []{{.Elem}}:
		AddTo{{.Name}}(dst, any(a).([]{{.Elem}}), any(b).([]{{.Elem}}))
{{- end}}
	}
}

// SubTo computes dst[i] = a[i] - b[i] over the shortest of the three slices.
// It runs the lane kernel for T when lanes.HasHardwareSupport reports a vector
// unit and ScalarSubTo otherwise.
func SubTo[T lanes.Element](dst, a, b []T) {
	if !lanes.HasHardwareSupport() {
		ScalarSubTo(dst, a, b)
		return
	}
	switch dst := any(dst).(type) {
{{- range .}}
	case []{{.Elem}}:
		SubTo{{.Name}}(dst, any(a).([]{{.Elem}}), any(b).([]{{.Elem}}))
{{- end}}
	}
}

// AddInPlace computes dst[i] += s[i] over the shorter slice.
func AddInPlace[T lanes.Element](dst, s []T) {
	if !lanes.HasHardwareSupport() {
		ScalarAddInPlace(dst, s)
		return
	}
	switch dst := any(dst).(type) {
{{- range .}}
	case []{{.Elem}}:
		AddInPlace{{.Name}}(dst, any(s).([]{{.Elem}}))
{{- end}}
	}
}

// SubInPlace computes dst[i] -= s[i] over the shorter slice.
func SubInPlace[T lanes.Element](dst, s []T) {
	if !lanes.HasHardwareSupport() {
		ScalarSubInPlace(dst, s)
		return
	}
	switch dst := any(dst).(type) {
{{- range .}}
	case []{{.Elem}}:
		SubInPlace{{.Name}}(dst, any(s).([]{{.Elem}}))
{{- end}}
	}
}

// Dot returns the dot product of a and b over the shorter slice.
// It runs the lane kernel for T when lanes.HasHardwareSupport reports a vector
// unit and ScalarDot otherwise.
func Dot[T lanes.Element](a, b []T) T {
	if !lanes.HasHardwareSupport() {
		return ScalarDot(a, b)
	}
	switch a := any(a).(type) {
{{- range .}}
	case []{{.Elem}}:
		return any(Dot{{.Name}}(a, any(b).([]{{.Elem}}))).(T)
{{- end}}
	}
	panic("unreachable")
}
`))
