// =============================================================================
// regsync - Register Address Sync
// =============================================================================
//
// Keeps the register addresses in the readout-card C++ headers in step with
// the firmware's VHDL address package.
//
// THE PIPELINE:
//   1. Symbol table maps firmware constants to public register names
//   2. Resolver reads pack_cru_core.vhd and follows "base + x"..."" chains
//   3. Patcher rewrites Register / IntervalRegister arguments in the headers
//   4. Tree-sitter re-parses the patched headers to verify the new addresses
//   5. OPA audits the run (unresolved symbols, malformed literals, ...)
//   6. Headers are written back in full
//
// Run with no arguments from src/Cru to patch Constants.h and
// ../../include/ReadoutCard/Cru.h, exactly as the firmware release flow
// expects.
// =============================================================================

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
