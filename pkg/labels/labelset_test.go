package labels

import (
	"testing"

	"github.com/bootstack/juju-exporter/pkg/inventory"
)

func TestBuild(t *testing.T) {
	b := NewBuilder("example_customer", "example_cloud")
	got := b.Build(inventory.HostRecord{
		HostID:    "juju-000ddd-test-0",
		ModelName: "default",
		Kind:      inventory.KindKVM,
		Running:   true,
	})

	want := LabelSet{
		Job:       "prometheus-juju-exporter",
		Hostname:  "juju-000ddd-test-0",
		Customer:  "example_customer",
		CloudName: "example_cloud",
		Model:     "default",
		Type:      "kvm",
	}
	if got != want {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestValuesFollowNames(t *testing.T) {
	ls := LabelSet{Job: "j", Hostname: "h", Customer: "c", CloudName: "cn", Model: "m", Type: "t"}
	names, values := Names(), ls.Values()

	if len(names) != len(values) {
		t.Fatalf("expected %d values, got %d", len(names), len(values))
	}

	m := ls.Map()
	for i, n := range names {
		if m[n] != values[i] {
			t.Errorf("label %s: map has %q, values has %q", n, m[n], values[i])
		}
	}
	if m[LabelCloudName] != "cn" {
		t.Errorf("expected cloud_name cn, got %q", m[LabelCloudName])
	}
}

func TestLabelSetEquality(t *testing.T) {
	a := LabelSet{Hostname: "h", Model: "m"}
	b := LabelSet{Hostname: "h", Model: "m"}
	c := LabelSet{Hostname: "h", Model: "other"}

	if a != b {
		t.Error("expected equal label sets")
	}
	if a == c {
		t.Error("expected different label sets")
	}
}
