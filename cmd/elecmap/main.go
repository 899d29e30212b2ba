// SPDX-License-Identifier: MIT

// Command elecmap computes election-map features for the profiles of an
// experiment file.
//
//	elecmap features
//	elecmap compute --experiment map.yaml --feature greedy_approx_pav_score --committee-size 3
//
// Defaults come from ELECMAP_* environment variables (optionally in .env);
// flags override them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "elecmap:", err)
		os.Exit(1)
	}
}
