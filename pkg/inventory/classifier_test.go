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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootstack/juju-exporter/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		skip       []string
		interfaces map[string]NetworkInterface
		want       MachineKind
	}{
		{
			name: "virt prefix",
			interfaces: map[string]NetworkInterface{
				"ens3": {MACAddress: "fa:16:3e:d4:00:00"},
			},
			want: KindKVM,
		},
		{
			name: "upper case mac",
			interfaces: map[string]NetworkInterface{
				"ens3": {MACAddress: "52:54:00:AB:CD:EF"},
			},
			want: KindKVM,
		},
		{
			name: "no virt prefix",
			interfaces: map[string]NetworkInterface{
				"eno1": {MACAddress: "3c:ec:ef:00:00:01"},
				"eno2": {MACAddress: "3c:ec:ef:00:00:02"},
			},
			want: KindMetal,
		},
		{
			name:       "no interfaces",
			interfaces: nil,
			want:       KindMetal,
		},
		{
			name: "matching interface excluded by name",
			skip: []string{"virbr"},
			interfaces: map[string]NetworkInterface{
				"eno1":   {MACAddress: "3c:ec:ef:00:00:01"},
				"virbr0": {MACAddress: "52:54:00:11:22:33"},
			},
			want: KindMetal,
		},
		{
			name: "exclusion leaves another matching interface",
			skip: []string{"virbr"},
			interfaces: map[string]NetworkInterface{
				"ens3":   {MACAddress: "fa:16:3e:00:00:01"},
				"virbr0": {MACAddress: "52:54:00:11:22:33"},
			},
			want: KindKVM,
		},
		{
			name: "multiple matches",
			interfaces: map[string]NetworkInterface{
				"ens3": {MACAddress: "fa:16:3e:00:00:01"},
				"ens4": {MACAddress: "52:54:00:00:00:02"},
			},
			want: KindKVM,
		},
		{
			name: "anchored exclusion pattern",
			skip: []string{"^fan-"},
			interfaces: map[string]NetworkInterface{
				"eth-fan-0": {MACAddress: "52:54:00:00:00:02"},
			},
			want: KindKVM,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClassifier(DefaultVirtMACPrefixes, tt.skip)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Classify(tt.interfaces))
		})
	}
}

func TestClassifyExclusionFlipsResult(t *testing.T) {
	interfaces := map[string]NetworkInterface{
		"br-ex": {MACAddress: "00:50:56:aa:bb:cc"},
		"eno1":  {MACAddress: "3c:ec:ef:00:00:01"},
	}

	withoutSkip, err := NewClassifier(DefaultVirtMACPrefixes, nil)
	require.NoError(t, err)
	assert.Equal(t, KindKVM, withoutSkip.Classify(interfaces))

	withSkip, err := NewClassifier(DefaultVirtMACPrefixes, []string{"br-ex"})
	require.NoError(t, err)
	assert.Equal(t, KindMetal, withSkip.Classify(interfaces))
}

func TestNewClassifierInvalidPattern(t *testing.T) {
	_, err := NewClassifier(DefaultVirtMACPrefixes, []string{"lxdbr", "fan-(["})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidConfig))
}

func TestNewClassifierIgnoresBlankPrefixes(t *testing.T) {
	c, err := NewClassifier([]string{"", "  ", "FA:16:3E"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fa:16:3e"}, c.prefixes)
	assert.Equal(t, KindMetal, c.Classify(map[string]NetworkInterface{
		"eno1": {MACAddress: "00:00:00:00:00:01"},
	}))
}

func TestSkipped(t *testing.T) {
	c, err := NewClassifier(nil, []string{"lxdbr", "fan-"})
	require.NoError(t, err)

	assert.True(t, c.Skipped("lxdbr0"))
	assert.True(t, c.Skipped("fan-252"))
	assert.False(t, c.Skipped("ens3"))

	none, err := NewClassifier(nil, nil)
	require.NoError(t, err)
	assert.False(t, none.Skipped("lxdbr0"))
}
