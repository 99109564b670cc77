// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmio

// Clock is the capability a peripheral holds on its gating clock line.
// Enable and Disable are idempotent and cannot fail; IsEnabled is a pure
// query.  The platform clock tree provides those three operations.
//
// Gateable is the compile-time half of the capability: it reports whether
// the clock can be gated at all and must be a constant for any given
// implementation.  Which implementation a peripheral uses is fixed by its
// type parameter, so ungateable peripherals carry no gating code at run
// time.
type Clock interface {
	IsEnabled() bool
	Enable()
	Disable()
	Gateable() bool
}

// NoClockControl is the capability for peripherals whose clock is always
// on.  It is zero sized and every operation on it compiles away.
type NoClockControl struct{}

func (NoClockControl) IsEnabled() bool { return true }
func (NoClockControl) Enable()         {}
func (NoClockControl) Disable()        {}
func (NoClockControl) Gateable() bool  { return false }
