// Package labels builds the label sets of the juju_machine_state gauge and
// computes, cycle by cycle, which series to update and which to remove.
//
// A Cache holds two maps keyed by host id: the entries exported by the
// previous cycle and the ones recorded during the current cycle.
//
//	cache.BeginCycle()
//	for _, rec := range records {
//	    cache.Record(rec, builder.Build(rec))
//	}
//	result := cache.FinishCycle()
//
// A host id seen in both cycles is always an update, never a removal, even
// when its labels changed. Sinks must treat Updates as authoritative.
package labels
