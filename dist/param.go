// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "fmt"

// A Param binds a name to either a constant value or a nested
// distribution. Nested parameters make hierarchical distributions
// representable: during evaluation they resolve recursively to the
// nested distribution's median.
type Param struct {
	Name  string
	Value float64
	Dist  *Dist // non-nil for a dependent parameter
}

// Constant returns a parameter holding a fixed value.
func Constant(name string, value float64) Param {
	return Param{Name: name, Value: value}
}

// Dependent returns a parameter whose value is drawn from a nested
// distribution.
func Dependent(name string, d *Dist) Param {
	return Param{Name: name, Dist: d}
}

func (p Param) resolve() (float64, error) {
	if p.Dist == nil {
		return p.Value, nil
	}
	v, err := p.Dist.PPF(0.5)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", p.Name, err)
	}
	return v, nil
}

func (p Param) String() string {
	if p.Dist != nil {
		return fmt.Sprintf("%s=%v", p.Name, p.Dist)
	}
	return fmt.Sprintf("%s=%v", p.Name, p.Value)
}
