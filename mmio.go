// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Clock gated, scope bound access to memory mapped peripheral registers.
//
// A peripheral driver never touches its register block directly.  It asks
// the peripheral's Periph for one scoped access; the scope turns the
// gating clock on before the block is reachable and decides on exit, from
// the peripheral's interrupt mask, whether the clock may be gated back
// off.
package mmio

import "github.com/platinasystems/log"

// Periph is the stable identity of one memory mapped peripheral: its
// register block at a fixed bus address plus the capability on its gating
// clock.  Declare exactly one Periph per physical peripheral, at startup,
// and keep it for the life of the process.
type Periph[R any, C Clock] struct {
	name string
	regs *R
	clk  C

	// Reads the block's interrupt mask register, the liveness proxy
	// consulted at scope exit.
	irqMask func(*R) uint32
}

// NewPeriph binds a register block to its gating clock capability.  regs
// is a non-owning view of the block at its fixed address (see
// hw.PointerAt); irqMask must read the block's interrupt mask register and
// nothing else.
func NewPeriph[R any, C Clock](name string, regs *R, clk C, irqMask func(*R) uint32) *Periph[R, C] {
	return &Periph[R, C]{name: name, regs: regs, clk: clk, irqMask: irqMask}
}

func (p *Periph[R, C]) Name() string { return p.name }

// Do runs f with the peripheral's clock guaranteed on.  This is the only
// supported way to reach the register block; f must not retain regs past
// its return.
//
// On entry the clock is enabled if it was off.  On exit, once per call and
// on every path out of f including panics, the interrupt mask is read: a
// zero mask means no consumer is waiting on the peripheral and the clock
// is gated off; a non-zero mask leaves it on.  The mask is a liveness
// heuristic, not a reference count: a driver that busy-polls with no
// interrupt source armed will see its clock gated off between scopes.
//
// Callers must not have two scopes active for the same peripheral at
// once, e.g. by re-entering from an interrupt context; the exit decisions
// would race.  Nothing here detects that.
func (p *Periph[R, C]) Do(f func(regs *R)) {
	if !p.clk.IsEnabled() {
		log.Print(p.name, ": master clock on")
		p.clk.Enable()
	}
	defer p.exit()
	f(p.regs)
}

func (p *Periph[R, C]) exit() {
	// Constant false for ungateable clocks; the whole block folds away.
	if !p.clk.Gateable() {
		return
	}
	if p.irqMask(p.regs) == 0 {
		log.Print(p.name, ": master clock off")
		p.clk.Disable()
	} else {
		log.Print(p.name, ": master clock left on")
	}
}
