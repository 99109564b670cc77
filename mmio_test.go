// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmio_test

import (
	"testing"

	"github.com/platinasystems/mmio"
	"github.com/platinasystems/mmio/clock"
	"github.com/platinasystems/mmio/hw"
)

type fakeRegs struct {
	control       hw.Reg32
	interruptMask hw.Reg32
}

func newFakeRegs(busAddr uintptr) *fakeRegs {
	r := (*fakeRegs)(hw.PointerAt(busAddr))
	r.control.Set(0)
	r.interruptMask.Set(0)
	return r
}

// countingLine records clock tree traffic seen from one peripheral.
type countingLine struct {
	*clock.Line
	enables, disables int
}

func (c *countingLine) Enable()  { c.enables++; c.Line.Enable() }
func (c *countingLine) Disable() { c.disables++; c.Line.Disable() }

func newFakePeriph(busAddr uintptr) (*mmio.Periph[fakeRegs, *countingLine], *countingLine) {
	cl := &countingLine{Line: clock.NewLine("fake")}
	p := mmio.NewPeriph("fake", newFakeRegs(busAddr), cl,
		func(r *fakeRegs) uint32 { return r.interruptMask.Get() })
	return p, cl
}

func TestClockEnabledDuringScope(t *testing.T) {
	p, cl := newFakePeriph(0x40100000)
	p.Do(func(r *fakeRegs) {
		if !cl.IsEnabled() {
			t.Error("clock not enabled during access")
		}
		r.control.Set(0x2f)
	})
	if got, want := cl.enables, 1; got != want {
		t.Errorf("enables %d != want %d", got, want)
	}
}

func TestExitMaskZeroDisables(t *testing.T) {
	p, cl := newFakePeriph(0x40101000)
	p.Do(func(r *fakeRegs) { r.interruptMask.Set(0) })
	if cl.IsEnabled() {
		t.Error("clock still enabled after exit with zero mask")
	}
	if got, want := cl.disables, 1; got != want {
		t.Errorf("disables %d != want %d", got, want)
	}
}

func TestExitMaskNonZeroLeavesOn(t *testing.T) {
	p, cl := newFakePeriph(0x40102000)
	p.Do(func(r *fakeRegs) { r.interruptMask.Set(1 << 7) })
	if !cl.IsEnabled() {
		t.Error("clock disabled despite armed interrupt source")
	}
	if got, want := cl.disables, 0; got != want {
		t.Errorf("disables %d != want %d", got, want)
	}
}

func TestPreEnabledClockUntouchedOnEntry(t *testing.T) {
	p, cl := newFakePeriph(0x40103000)
	cl.Line.Enable()
	p.Do(func(r *fakeRegs) { r.interruptMask.Set(1) })
	if got, want := cl.enables, 0; got != want {
		t.Errorf("enables %d != want %d", got, want)
	}
	if got, want := cl.disables, 0; got != want {
		t.Errorf("disables %d != want %d", got, want)
	}
	if !cl.IsEnabled() {
		t.Error("clock state changed by entry")
	}
}

func TestNoClockControl(t *testing.T) {
	maskReads := 0
	r := newFakeRegs(0x40104000)
	p := mmio.NewPeriph("fake", r, mmio.NoClockControl{},
		func(r *fakeRegs) uint32 { maskReads++; return r.interruptMask.Get() })
	for i := 0; i < 3; i++ {
		p.Do(func(r *fakeRegs) { r.control.Set(uint32(i)) })
	}
	if got, want := maskReads, 0; got != want {
		t.Errorf("mask reads %d != want %d", got, want)
	}
	if got, want := r.control.Get(), uint32(2); got != want {
		t.Errorf("control 0x%x != want 0x%x", got, want)
	}
}

func TestExitRunsOnPanic(t *testing.T) {
	p, cl := newFakePeriph(0x40105000)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic to propagate")
		}
		if cl.IsEnabled() {
			t.Error("clock left on after panic with zero mask")
		}
	}()
	p.Do(func(r *fakeRegs) {
		r.interruptMask.Set(0)
		panic("driver fault")
	})
}
