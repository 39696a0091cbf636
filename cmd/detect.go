// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 yelobat

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.bug.st/serial/enumerator"

	"github.com/yelobat/m8term/pkg/m8"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "List serial ports and identify connected M8 devices",
	Long: `Enumerate serial ports and mark any Dirtywave M8 found by its USB
vendor/product identification (16C0:048A).

Exit codes:
  0 - At least one M8 found
  1 - No M8 found
  2 - Port enumeration failed`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Enumeration error: %v\n", err)
		os.Exit(2)
	}

	if len(ports) == 0 {
		fmt.Println("No serial ports found")
		os.Exit(1)
	}

	wantVID := fmt.Sprintf("%04X", m8.USBVendorID)
	wantPID := fmt.Sprintf("%04X", m8.USBProductID)

	found := 0
	for _, port := range ports {
		if !port.IsUSB {
			fmt.Printf("%-20s (not USB)\n", port.Name)
			continue
		}

		tag := ""
		if strings.EqualFold(port.VID, wantVID) && strings.EqualFold(port.PID, wantPID) {
			tag = "  <- M8"
			found++
		}
		fmt.Printf("%-20s USB %s:%s %s%s\n", port.Name, port.VID, port.PID, port.Product, tag)
	}

	if found == 0 {
		fmt.Println("\nNo M8 device found")
		os.Exit(1)
	}

	fmt.Printf("\nFound %d M8 device(s)\n", found)
	return nil
}
