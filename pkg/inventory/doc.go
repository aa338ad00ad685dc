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

// Package inventory turns a Juju model status into classified host records.
//
// # Identity
//
// ResolveHostID picks a host's identity from its hostname, falling back to the
// instance id. Unset values ("None", empty, null) are skipped; a "pending"
// value means the controller has not assigned an identity yet and makes the
// host Unidentified.
//
// # Classification
//
// A Classifier marks a machine as KindKVM when a non-excluded interface has a
// MAC address starting with a virtualization prefix, otherwise KindMetal.
// Containers are always KindLXD.
//
// # Walking
//
//	c, err := inventory.NewClassifier(inventory.DefaultVirtMACPrefixes, []string{"lxdbr", "fan-"})
//	if err != nil {
//	    return err // configuration error
//	}
//	records, err := inventory.NewWalker(c).Walk("default", tree)
//
// Walk never keeps a reference to the tree it was given.
package inventory
