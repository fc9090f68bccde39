// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import "strings"

// GrowthPolicy decides the new capacity when an append finds the buffer full.
type GrowthPolicy interface {
	// Name identifies the policy in configuration files.
	Name() string
	// GrowBack returns the capacity used by PushBack on a full vector.
	GrowBack(capacity int) int
	// GrowFront returns the capacity used by PushFront on a full vector.
	GrowFront(capacity int) int
	// GrowAssign returns the capacity used by AssignRange when want
	// elements do not fit.
	GrowAssign(capacity, want int) int
}

// LegacyGrowth grows by one slot on PushBack, doubles on PushFront, and
// reserves capacity+want on AssignRange. It is the default policy.
//
// The three rules are inconsistent with each other, and PushBack degrades
// to quadratic copying over long runs of appends; DoublingGrowth is the
// unified alternative.
type LegacyGrowth struct{}

func (LegacyGrowth) Name() string { return "legacy" }

func (LegacyGrowth) GrowBack(capacity int) int {
	return capacity + 1
}

func (LegacyGrowth) GrowFront(capacity int) int {
	// doubling zero would leave no room for the new element
	if capacity == 0 {
		return 1
	}
	return capacity * 2
}

func (LegacyGrowth) GrowAssign(capacity, want int) int {
	return capacity + want
}

// DoublingGrowth doubles the capacity on both ends and reserves exactly what
// AssignRange needs.
type DoublingGrowth struct{}

func (DoublingGrowth) Name() string { return "doubling" }

func (DoublingGrowth) GrowBack(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return capacity * 2
}

func (g DoublingGrowth) GrowFront(capacity int) int {
	return g.GrowBack(capacity)
}

func (DoublingGrowth) GrowAssign(capacity, want int) int {
	if want > capacity*2 {
		return want
	}
	return capacity * 2
}

var defaultGrowth GrowthPolicy = LegacyGrowth{}

// PolicyByName returns the growth policy registered under name, or false.
func PolicyByName(name string) (GrowthPolicy, bool) {
	switch strings.ToLower(name) {
	case "", "legacy":
		return LegacyGrowth{}, true
	case "doubling":
		return DoublingGrowth{}, true
	}
	return nil, false
}
