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

package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootstack/juju-exporter/pkg/errors"
	"github.com/bootstack/juju-exporter/pkg/labels"
)

const (
	testGauge = "juju_machine_state"
	testHelp  = "Running status of juju machines"
)

func labelSet(host, model, kind string) labels.LabelSet {
	return labels.LabelSet{
		Job:       labels.DefaultJob,
		Hostname:  host,
		Customer:  "example_customer",
		CloudName: "example_cloud",
		Model:     model,
		Type:      kind,
	}
}

func newSink(t *testing.T) *GaugeSink {
	t.Helper()
	s := NewGaugeSink()
	require.NoError(t, s.EnsureGauge(testGauge, testHelp, labels.Names()))
	return s
}

func TestEnsureGaugeIdempotent(t *testing.T) {
	s := newSink(t)
	assert.NoError(t, s.EnsureGauge(testGauge, testHelp, labels.Names()))

	err := s.EnsureGauge(testGauge, testHelp, []string{"hostname"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInternal))
}

func TestSetExposesSeries(t *testing.T) {
	s := newSink(t)
	require.NoError(t, s.Set(testGauge, labelSet("juju-000ddd-test-0", "default", "kvm"), 1))
	require.NoError(t, s.Set(testGauge, labelSet("juju-000ddd-test-0-lxd-0", "default", "lxd"), 0))

	expected := `
# HELP juju_machine_state Running status of juju machines
# TYPE juju_machine_state gauge
juju_machine_state{cloud_name="example_cloud",customer="example_customer",hostname="juju-000ddd-test-0",job="prometheus-juju-exporter",model="default",type="kvm"} 1
juju_machine_state{cloud_name="example_cloud",customer="example_customer",hostname="juju-000ddd-test-0-lxd-0",job="prometheus-juju-exporter",model="default",type="lxd"} 0
`
	assert.NoError(t, testutil.GatherAndCompare(s.Gatherer(), strings.NewReader(expected), testGauge))
	assert.Equal(t, 2, s.Len(testGauge))
}

func TestSetReplacesChangedLabels(t *testing.T) {
	s := newSink(t)
	require.NoError(t, s.Set(testGauge, labelSet("A", "default", "metal"), 1))
	require.NoError(t, s.Set(testGauge, labelSet("A", "other", "kvm"), 0))

	expected := `
# HELP juju_machine_state Running status of juju machines
# TYPE juju_machine_state gauge
juju_machine_state{cloud_name="example_cloud",customer="example_customer",hostname="A",job="prometheus-juju-exporter",model="other",type="kvm"} 0
`
	assert.NoError(t, testutil.GatherAndCompare(s.Gatherer(), strings.NewReader(expected), testGauge))
	assert.Equal(t, 1, s.Len(testGauge))
}

func TestRemove(t *testing.T) {
	s := newSink(t)
	a := labelSet("A", "default", "metal")
	b := labelSet("B", "default", "metal")
	require.NoError(t, s.Set(testGauge, a, 1))
	require.NoError(t, s.Set(testGauge, b, 1))

	assert.True(t, s.Remove(testGauge, b))
	assert.False(t, s.Remove(testGauge, b))
	assert.False(t, s.Remove("unknown_gauge", a))

	count, err := testutil.GatherAndCount(s.Gatherer(), testGauge)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, s.Len(testGauge))
}

func TestSetUnknownGauge(t *testing.T) {
	s := NewGaugeSink()
	err := s.Set("missing", labelSet("A", "default", "metal"), 1)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
	assert.Zero(t, s.Len("missing"))
}
