// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gated clock lines for the platform clock tree.
package clock

// Line is one gating clock line.  A line may feed several peripherals;
// gating it from one affects the others, which is a property of the
// physical tree, not of this package.  Enable and Disable are idempotent
// and cannot fail.  Lines outlive every peripheral using them and assume
// a single logical thread of control, so there is no locking.
type Line struct {
	name    string
	enabled bool
}

func NewLine(name string) *Line { return &Line{name: name} }

func (l *Line) Name() string    { return l.name }
func (l *Line) IsEnabled() bool { return l.enabled }
func (l *Line) Enable()         { l.enabled = true }
func (l *Line) Disable()        { l.enabled = false }
func (l *Line) Gateable() bool  { return true }
