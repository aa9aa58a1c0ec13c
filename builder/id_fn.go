// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// id_fn.go — vertex ID schemes.
//
// Contract:
//   • An IDFn maps a zero-based index to a stable, unique string.
//   • Schemes are pure and deterministic.

package builder

import (
	"strconv"
)

// IDFn maps an integer index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: 0→"0", 1→"1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
// Negative indices fall back to DefaultIDFn.
func SymbolIDFn(idx int) string {
	if idx < 0 {
		return DefaultIDFn(idx)
	}
	var buf [16]byte
	i := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}

	return string(buf[i:])
}

// PrefixIDFn returns an IDFn producing prefix+decimal index, e.g. "v0","v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// HexIDFn returns lowercase hexadecimal indices: 10→"a", 255→"ff".
func HexIDFn(idx int) string {
	return strconv.FormatInt(int64(idx), 16)
}
