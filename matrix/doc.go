// Package matrix provides the typed ternary matrix representations and the
// seeded generator that produces benchmark inputs.
//
// A Dense matrix stores one ternary weight per byte (int8); a Packed matrix
// stores four weights per byte using the 2-bit encoding from the encoding
// package. Both are row-major and immutable after generation/packing: the
// benchmark allocates them once per run and only reads them afterwards.
//
// The Generator is deterministic: the same seed and parameters always yield
// the same matrix and input vector, so benchmark runs and test fixtures are
// reproducible.
package matrix
