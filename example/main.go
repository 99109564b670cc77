// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/platinasystems/mmio/treg"
)

func main() {
	treg.SetControl(0x2f)
	fmt.Printf("control 0x%x, clock enabled %v\n", treg.Ping(), treg.Clock.IsEnabled())

	treg.Arm(1 << 3)
	fmt.Printf("armed, clock enabled %v\n", treg.Clock.IsEnabled())

	treg.Disarm()
	fmt.Printf("disarmed, clock enabled %v\n", treg.Clock.IsEnabled())
}
