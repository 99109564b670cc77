// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Memory mapped register read/write.
package hw

import (
	"fmt"
	"sync/atomic"
	"syscall"
	"unsafe"
)

// Window standing in for the peripheral address space.  Register blocks are
// placed inside it at their fixed bus addresses via PointerAt.  Mapped once
// at startup; never unmapped.
var (
	BasePointer = basePointer()
	BaseAddress = uintptr(BasePointer)
)

func basePointer() unsafe.Pointer {
	// ok for all 32 bit devices.
	x, err := syscall.Mmap(0, 0, 1<<32, syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_PRIVATE|syscall.MAP_ANON|syscall.MAP_NORESERVE)
	if err != nil {
		panic(err)
	}
	return unsafe.Pointer(&x[0])
}

// PointerAt returns the window address of a fixed bus address.  Cast the
// result to the peripheral's register block type; the block never moves.
func PointerAt(busAddr uintptr) unsafe.Pointer {
	return unsafe.Pointer(BaseAddress + busAddr)
}

func CheckRegAddr(name string, got, want uint) {
	if got != want {
		panic(fmt.Errorf("%s got 0x%x != want 0x%x", name, got, want))
	}
}

// Memory-mapped read/write.  32 and 64 bit accesses go through sync/atomic
// so the compiler neither elides nor tears them.
func LoadUint32(addr uintptr) (data uint32) {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}
func StoreUint32(addr uintptr, data uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(addr)), data)
}
func LoadUint64(addr uintptr) (data uint64) {
	return atomic.LoadUint64((*uint64)(unsafe.Pointer(addr)))
}
func StoreUint64(addr uintptr, data uint64) {
	atomic.StoreUint64((*uint64)(unsafe.Pointer(addr)), data)
}

// Generic 8/16/32/64 bit registers.  Cells hold raw bit patterns; masking,
// validation and semantic decoding belong to the driver above.  64 bit
// cells must sit at 8 byte aligned offsets.
type Reg8 uint8
type Reg16 uint16
type Reg32 uint32
type Reg64 uint64

// Byte offsets from window base, i.e. the register's bus address.
func (r *Reg8) Offset() uintptr  { return uintptr(unsafe.Pointer(r)) - BaseAddress }
func (r *Reg16) Offset() uintptr { return uintptr(unsafe.Pointer(r)) - BaseAddress }
func (r *Reg32) Offset() uintptr { return uintptr(unsafe.Pointer(r)) - BaseAddress }
func (r *Reg64) Offset() uintptr { return uintptr(unsafe.Pointer(r)) - BaseAddress }

func (r *Reg8) Get() uint8    { return *(*uint8)(unsafe.Pointer(r)) }
func (r *Reg8) Set(x uint8)   { *(*uint8)(unsafe.Pointer(r)) = x }
func (r *Reg16) Get() uint16  { return *(*uint16)(unsafe.Pointer(r)) }
func (r *Reg16) Set(x uint16) { *(*uint16)(unsafe.Pointer(r)) = x }

func (r *Reg32) Get() uint32  { return LoadUint32(uintptr(unsafe.Pointer(r))) }
func (r *Reg32) Set(x uint32) { StoreUint32(uintptr(unsafe.Pointer(r)), x) }

func (r *Reg64) Get() uint64  { return LoadUint64(uintptr(unsafe.Pointer(r))) }
func (r *Reg64) Set(x uint64) { StoreUint64(uintptr(unsafe.Pointer(r)), x) }

func (r *Reg32) SetBits(mask uint32)      { r.Set(r.Get() | mask) }
func (r *Reg32) ClearBits(mask uint32)    { r.Set(r.Get() &^ mask) }
func (r *Reg32) HasBits(mask uint32) bool { return r.Get()&mask != 0 }
