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

package inventory

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bootstack/juju-exporter/pkg/errors"
)

// DefaultVirtMACPrefixes are OUI prefixes assigned to common hypervisors
// (QEMU/KVM, OpenStack, AWS, Hyper-V, VMware).
var DefaultVirtMACPrefixes = []string{
	"52:54:00",
	"fa:16:3e",
	"06:f1:3a",
	"00:0d:3a",
	"00:50:56",
}

// Classifier decides whether a machine is bare metal or a virtual machine
// from the MAC addresses of its network interfaces.
type Classifier struct {
	prefixes []string
	skip     *regexp.Regexp
}

// NewClassifier builds a classifier. Each skip entry is a regular expression
// matched anywhere in the interface name, so a plain name such as "lxdbr"
// excludes every interface containing it.
func NewClassifier(virtMACPrefixes, skipInterfaces []string) (*Classifier, error) {
	c := &Classifier{}

	for _, p := range virtMACPrefixes {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		c.prefixes = append(c.prefixes, p)
	}

	if len(skipInterfaces) > 0 {
		parts := make([]string, 0, len(skipInterfaces))
		for _, s := range skipInterfaces {
			if _, err := regexp.Compile(s); err != nil {
				return nil, errors.WrapWithContext(errors.ErrCodeInvalidConfig,
					"invalid interface exclusion pattern", err,
					map[string]any{"pattern": s})
			}
			parts = append(parts, fmt.Sprintf("(?:%s)", s))
		}
		re, err := regexp.Compile(strings.Join(parts, "|"))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig,
				"invalid interface exclusion patterns", err)
		}
		c.skip = re
	}

	return c, nil
}

// Skipped reports whether the interface is excluded from classification.
func (c *Classifier) Skipped(name string) bool {
	return c.skip != nil && c.skip.MatchString(name)
}

// Classify returns KindKVM when any non-excluded interface carries a MAC
// address with a virtualization prefix, and KindMetal otherwise.
func (c *Classifier) Classify(interfaces map[string]NetworkInterface) MachineKind {
	names := make([]string, 0, len(interfaces))
	for name := range interfaces {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if c.Skipped(name) {
			continue
		}
		mac := strings.ToLower(interfaces[name].MACAddress)
		for _, p := range c.prefixes {
			if strings.HasPrefix(mac, p) {
				return KindKVM
			}
		}
	}
	return KindMetal
}
