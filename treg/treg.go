// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Synthetic two register peripheral exercising the clock gated access
// path end to end.
package treg

import (
	"unsafe"

	"github.com/platinasystems/mmio"
	"github.com/platinasystems/mmio/clock"
	"github.com/platinasystems/mmio/hw"
)

const BaseAddr = 0x40001000

type Regs struct {
	Control       hw.Reg32
	InterruptMask hw.Reg32
}

var regs = (*Regs)(hw.PointerAt(BaseAddr))

// Master clock feeding the peripheral.
var Clock = clock.NewLine("treg")

// Test0 is the one instance of the peripheral; its block never moves.
var Test0 = mmio.NewPeriph("treg0", regs, Clock,
	func(r *Regs) uint32 { return r.InterruptMask.Get() })

func init() {
	hw.CheckRegAddr("control", uint(unsafe.Offsetof(regs.Control)), 0x0)
	hw.CheckRegAddr("interrupt_mask", uint(unsafe.Offsetof(regs.InterruptMask)), 0x4)
}

// Ping reads the control register through one scoped access.
func Ping() (v uint32) {
	Test0.Do(func(r *Regs) { v = r.Control.Get() })
	return
}

// SetControl writes the control register.
func SetControl(v uint32) {
	Test0.Do(func(r *Regs) { r.Control.Set(v) })
}

// Arm adds interrupt sources to the mask.  A non zero mask keeps the
// master clock on between accesses.
func Arm(mask uint32) {
	Test0.Do(func(r *Regs) { r.InterruptMask.SetBits(mask) })
}

// Disarm clears the mask; the scope exit then gates the clock off.
func Disarm() {
	Test0.Do(func(r *Regs) { r.InterruptMask.Set(0) })
}
