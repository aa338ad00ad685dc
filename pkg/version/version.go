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
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 4 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// MinimumController is the oldest controller release whose status payload
// carries network interfaces and container hostnames.
var MinimumController = Version{Major: 2, Minor: 9, Precision: 2}

// Version is a controller release number such as "2.9.29", "3.4-beta1"
// or "2.9.29.1" where the fourth component is the build number.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`
	Build int `json:"build,omitempty" yaml:"build,omitempty"`

	// Precision indicates how many numeric components were given (1 to 4).
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Tag stores a pre-release tag such as "beta1" or "rc2".
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// String returns the version respecting its precision, followed by the
// tag when present.
func (v Version) String() string {
	var s string
	switch v.Precision {
	case 1:
		s = fmt.Sprintf("%d", v.Major)
	case 2:
		s = fmt.Sprintf("%d.%d", v.Major, v.Minor)
	case 4:
		s = fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
	default:
		s = fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Tag != "" {
		s += "-" + v.Tag
	}
	return s
}

// ParseVersion parses a controller version string. A leading "v" is
// accepted. A tag may follow the minor number ("3.4-beta1.1") or the last
// component ("2.9.29-rc1"); digits after the tag are kept in the tag.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	var v Version
	main := s
	if i := strings.IndexByte(s, '-'); i > 0 {
		main, v.Tag = s[:i], s[i+1:]
	}

	parts := strings.Split(main, ".")
	if len(parts) > 4 {
		return Version{}, ErrTooManyComponents
	}

	nums := []*int{&v.Major, &v.Minor, &v.Patch, &v.Build}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		*nums[i] = n
	}
	v.Precision = len(parts)
	return v, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// Compare returns -1, 0 or 1 comparing v with other on the numeric
// components both versions specify. Tags are ignored.
func (v Version) Compare(other Version) int {
	precision := v.Precision
	if other.Precision < precision {
		precision = other.Precision
	}

	a := []int{v.Major, v.Minor, v.Patch, v.Build}
	b := []int{other.Major, other.Minor, other.Patch, other.Build}
	for i := 0; i < precision; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// EqualsOrNewer returns true if v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// Supported reports whether v is at least MinimumController.
func (v Version) Supported() bool {
	return v.EqualsOrNewer(MinimumController)
}
