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

//go:generate mockgen -source=observer.go -destination=test/observer_mock.go -package=mock_vector

// Observer is notified every time a vector replaces its storage buffer.
type Observer interface {
	OnRealloc(oldCap, newCap int)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(oldCap, newCap int)

func (f ObserverFunc) OnRealloc(oldCap, newCap int) {
	f(oldCap, newCap)
}

// Option configures a Vector at construction time.
type Option func(*options)

type options struct {
	growth   GrowthPolicy
	observer Observer
}

// WithGrowthPolicy sets the policy used by PushBack, PushFront and AssignRange.
func WithGrowthPolicy(p GrowthPolicy) Option {
	return func(o *options) {
		o.growth = p
	}
}

// WithObserver registers an observer for reallocations.
func WithObserver(ob Observer) Option {
	return func(o *options) {
		o.observer = ob
	}
}
