// SPDX-License-Identifier: MIT

// Package builder constructs deterministic linked-chain fixtures: the sample
// scenarios, converging pairs for the merge finders and cyclic arena chains for
// the cycle detector.
//
// Nothing here runs at import time; every fixture is produced by an explicit call.
//
// The package offers:
//
//   - Sample scenarios:
//     – SampleList:     addFront 3,2,1,4 then addBack 5 → [4, 1, 2, 3, 5].
//     – SampleMerge:    1→2→3→4→5→6 and 10→11→[4] (rejoining at the cell holding 4).
//     – SampleCycle:    1→2→3→4→5→[back to 3].
//   - Parametric constructors:
//     – Converging:       two prefixes and a shared tail of given lengths.
//     – RandomConverging: the same with lengths drawn from a seeded RNG.
//     – Cyclic:           n cells with the last linked back to cell `entry`.
//   - Configuration primitives (BuilderOption → builderConfig):
//     – WithSeed / WithRand:  RNG for RandomConverging.
//     – WithValueScheme:      index → payload (default DefaultValueFn: 1, 2, 3, …).
//     – WithMaxPrefix / WithMaxShared: bounds for RandomConverging.
//   - Value schemes (ValueFn): DefaultValueFn, ZeroBasedValueFn, OffsetValueFn, StrideValueFn.
//
// Value comparison in the merge finders and the cycle detector is only exact when
// payloads are unique; every built-in scheme is injective, custom schemes should be too.
//
// Errors: ErrTooFewNodes, ErrBadEntry, ErrNeedRandSource (see errors.go).
package builder
