// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

// TestSinglePackageClause parses the clause of every source file and checks
// that each directory declares one package named after it, plus its
// external test package.
func TestSinglePackageClause(t *testing.T) {
	pkgs := map[string]map[string]bool{}

	for _, root := range []string{".", filepath.Join("..", "..", "pkg")} {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == "testdata" {
				return filepath.SkipDir
			}
			if d.IsDir() || !strings.HasSuffix(path, ".go") {
				return nil
			}

			f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.PackageClauseOnly)
			if err != nil {
				t.Errorf("%s: %v", path, err)
				return nil
			}

			dir := filepath.Dir(path)
			if pkgs[dir] == nil {
				pkgs[dir] = map[string]bool{}
			}
			pkgs[dir][strings.TrimSuffix(f.Name.Name, "_test")] = true
			return nil
		})
		if err != nil {
			t.Fatalf("failed to walk %s: %v", root, err)
		}
	}

	if len(pkgs) == 0 {
		t.Fatal("no source files found")
	}
	for dir, names := range pkgs {
		if len(names) != 1 {
			t.Errorf("%s declares %d packages: %v", dir, len(names), names)
			continue
		}
		want := filepath.Base(dir)
		if dir == "." {
			want = "main"
		}
		if !names[want] {
			t.Errorf("%s declares %v, want package %s", dir, names, want)
		}
	}
}
