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
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ajroetker/linalg/lanes"
	"github.com/stretchr/testify/require"
)

func generateAll(t *testing.T) map[string]File {
	t.Helper()
	laneFiles, err := GenerateLanes(DefaultSpecs())
	require.NoError(t, err)
	kernelFiles, err := GenerateKernels(DefaultSpecs())
	require.NoError(t, err)

	out := make(map[string]File)
	for _, f := range laneFiles {
		out["lanes/"+f.Name] = f
	}
	for _, f := range kernelFiles {
		out["lanes/vec/"+f.Name] = f
	}
	return out
}

func TestGenerateParses(t *testing.T) {
	files := generateAll(t)
	require.Len(t, files, 5)

	for rel, f := range files {
		fset := token.NewFileSet()
		parsed, err := parser.ParseFile(fset, f.Name, f.Src, parser.ParseComments)
		require.NoError(t, err, rel)
		require.Equal(t, path.Base(path.Dir(rel)), parsed.Name.Name, rel)

		src := string(f.Src)
		require.True(t, strings.HasPrefix(src, "// Copyright"), rel)
		require.Contains(t, src, "// Code generated by lanegen. DO NOT EDIT.", rel)
	}
}

func TestGenerateBuildTags(t *testing.T) {
	files := generateAll(t)
	require.Contains(t, string(files["lanes/z_int_lanes_avx2.go"].Src), "//go:build amd64 && goexperiment.simd\n")
	require.Contains(t, string(files["lanes/z_int_lanes_generic.go"].Src), "//go:build !amd64 || !goexperiment.simd\n")
	require.NotContains(t, string(files["lanes/z_int_lanes.go"].Src), "//go:build")
	require.NotContains(t, string(files["lanes/vec/z_vec_kernels.go"].Src), "//go:build")
}

func TestGenerateContainsEverySpec(t *testing.T) {
	files := generateAll(t)
	shared := string(files["lanes/z_int_lanes.go"].Src)
	generic := string(files["lanes/z_int_lanes_generic.go"].Src)
	avx2 := string(files["lanes/z_int_lanes_avx2.go"].Src)
	kernels := string(files["lanes/vec/z_vec_kernels.go"].Src)
	dispatch := string(files["lanes/vec/z_vec_dispatch.go"].Src)

	for _, s := range DefaultSpecs() {
		if s.Integer() {
			require.Contains(t, shared, "type "+s.Ops+" struct{}")
			require.Contains(t, generic, "type "+s.Reg+" struct{ v ["+strconv.Itoa(s.Lanes)+"]"+s.Elem+" }")
			require.Contains(t, avx2, "type "+s.Reg+" struct{ v archsimd."+s.Reg+" }")
			require.Contains(t, kernels, "var acc ["+strconv.Itoa(s.Lanes)+"]"+s.Elem)
		}
		for _, fn := range []string{"AddTo", "SubTo", "AddInPlace", "SubInPlace", "Dot"} {
			require.Contains(t, kernels, "func "+fn+s.Name()+"(")
		}
		require.Contains(t, kernels, "var ops lanes."+s.Ops+"\n")
		require.Contains(t, dispatch, "case []"+s.Elem+":")
	}
	require.NotContains(t, shared, "float")
}

// The generated constants must agree with the lane contracts they stamp out.
func TestSpecsMatchLaneContracts(t *testing.T) {
	contracts := map[string][2]int{
		"F32":  {lanes.F32{}.LaneSize(), lanes.F32{}.PrefetchDistance()},
		"F64":  {lanes.F64{}.LaneSize(), lanes.F64{}.PrefetchDistance()},
		"I32":  {lanes.I32{}.LaneSize(), lanes.I32{}.PrefetchDistance()},
		"U32":  {lanes.U32{}.LaneSize(), lanes.U32{}.PrefetchDistance()},
		"I64":  {lanes.I64{}.LaneSize(), lanes.I64{}.PrefetchDistance()},
		"U64":  {lanes.U64{}.LaneSize(), lanes.U64{}.PrefetchDistance()},
		"C64":  {lanes.C64{}.LaneSize(), lanes.C64{}.PrefetchDistance()},
		"C128": {lanes.C128{}.LaneSize(), lanes.C128{}.PrefetchDistance()},
	}
	require.Len(t, DefaultSpecs(), len(contracts))
	for _, s := range DefaultSpecs() {
		c, ok := contracts[s.Ops]
		require.True(t, ok, s.Ops)
		require.Equal(t, c[0], s.Lanes, "%s lanes", s.Ops)
		require.Equal(t, c[1], s.Prefetch, "%s prefetch", s.Ops)
		require.Equal(t, 32, s.Lanes*s.Size, "%s register bytes", s.Ops)
		require.Equal(t, 2*s.Lanes, s.Line(), "%s cache line", s.Ops)
	}
}

func TestSpecHelpers(t *testing.T) {
	s := LaneSpec{Ops: "C128", Elem: "complex128", Lanes: 2, Prefetch: 8, Size: 16}
	require.Equal(t, "Complex128", s.Name())
	require.Equal(t, 16, s.Ahead())
	require.Equal(t, 4, s.Line())
	require.False(t, s.Integer())
	require.True(t, LaneSpec{Elem: "uint64"}.Integer())
	require.Len(t, IntSpecs(DefaultSpecs()), 4)
}

// Whitespace may differ from a local goimports run; the tokens may not.
func TestGenerateMatchesCheckedInFiles(t *testing.T) {
	for rel, f := range generateAll(t) {
		want, err := os.ReadFile(filepath.Join("..", "..", filepath.FromSlash(rel)))
		require.NoError(t, err)
		require.Equal(t, strings.Fields(string(want)), strings.Fields(string(f.Src)),
			"%s is stale, run go generate ./lanes/...", rel)
	}
}
