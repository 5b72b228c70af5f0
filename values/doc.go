// Package values defines the interpreter's tagged runtime values.
//
// A Value pairs a semantic type tag (i32, i64, f32, f64) with the
// canonical uint64 bit encoding of its payload, matching the
// representation used on the interpreter's execution stack. The zero
// Value is None, the absent result of a void function.
package values
