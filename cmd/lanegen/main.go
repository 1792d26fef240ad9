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

// Command lanegen generates the per-type lane code of this module.
//
// The lane types and slice kernels differ only in element type, register name
// and width, so they are stamped out from one template per file instead of
// being maintained by hand. Calling the concrete ops types directly lets the
// compiler inline every lane operation into the kernel loops.
//
// Usage:
//
//	lanegen -kind lanes -output .    # integer lanes of package lanes
//	lanegen -kind kernels -output .  # slice kernels of package lanes/vec
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/lanegen -kind lanes -output .
//	//go:generate go run ../../cmd/lanegen -kind kernels -output .
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

var (
	kind      = flag.String("kind", "lanes", "What to generate: lanes or kernels")
	outputDir = flag.String("output", ".", "Output directory")
)

func main() {
	flag.Parse()

	var (
		files []File
		err   error
	)
	switch *kind {
	case "lanes":
		files, err = GenerateLanes(DefaultSpecs())
	case "kernels":
		files, err = GenerateKernels(DefaultSpecs())
	default:
		err = fmt.Errorf("unknown -kind %q (want lanes or kernels)", *kind)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, f := range files {
		path := filepath.Join(*outputDir, f.Name)
		if err := os.WriteFile(path, f.Src, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully generated %s\n", path)
	}
}
