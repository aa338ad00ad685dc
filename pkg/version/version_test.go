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

package version

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr error
	}{
		{in: "2.9.29", want: Version{Major: 2, Minor: 9, Patch: 29, Precision: 3}},
		{in: "v3.1.6", want: Version{Major: 3, Minor: 1, Patch: 6, Precision: 3}},
		{in: "2.9.29.1", want: Version{Major: 2, Minor: 9, Patch: 29, Build: 1, Precision: 4}},
		{in: "3.4-beta1", want: Version{Major: 3, Minor: 4, Precision: 2, Tag: "beta1"}},
		{in: "2.9.29-rc1", want: Version{Major: 2, Minor: 9, Patch: 29, Precision: 3, Tag: "rc1"}},
		{in: "3", want: Version{Major: 3, Precision: 1}},
		{in: "", wantErr: ErrEmptyVersion},
		{in: "v", wantErr: ErrEmptyVersion},
		{in: "1.2.3.4.5", wantErr: ErrTooManyComponents},
		{in: "2.x.1", wantErr: ErrNonNumeric},
		{in: "2..1", wantErr: ErrNonNumeric},
		{in: "-1", wantErr: ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.9.29", "2.9.29"},
		{"v3.1", "3.1"},
		{"2.9.29.1", "2.9.29.1"},
		{"3.4-beta1", "3.4-beta1"},
		{"3", "3"},
	}
	for _, tt := range tests {
		if got := MustParseVersion(tt.in).String(); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2.9.29", "2.9.29", 0},
		{"2.9.29", "2.9.30", -1},
		{"3.1.0", "2.9.42", 1},
		{"2.9", "2.9.42", 0},
		{"2.9.29.1", "2.9.29.2", -1},
		{"3.4-beta1", "3.4.0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := MustParseVersion(tt.a).Compare(MustParseVersion(tt.b)); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2.9.29", true},
		{"2.9", true},
		{"3.1.6", true},
		{"2.8.13", false},
		{"1.25.0", false},
	}
	for _, tt := range tests {
		if got := MustParseVersion(tt.in).Supported(); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMustParseVersionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseVersion("not-a-version")
}
