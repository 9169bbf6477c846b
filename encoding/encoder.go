// Package encoding implements a deterministic, length-prefixed byte
// encoder for scalars and lists, used as leaves for transaction
// hashing and future header encoding. The byte format is inspired by
// RLP but does not claim wire compatibility with it; the exact byte
// rules are listed on EncodeBytes and EncodeList below.
//
// The encoder performs no I/O and is pure: for any two semantically
// equal inputs the output is byte-identical.
package encoding

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidInput is returned by EncodeNumber/EncodeBigInt for
// negative input, and by EncodeBigInt for a nil *big.Int. This is a programmer error per
// spec.md §7 stratum 2 — well-typed callers should never trigger it.
var ErrInvalidInput = errors.New("encoding: invalid input")

// EncodeBytes encodes a raw byte string per the scalar rules:
//   - length 1 and b[0] < 0x80: the byte as-is
//   - length 0..55: [0x80+len] ++ b
//   - length > 55: [0xb7+lenOfLen] ++ bigEndianLen ++ b
func EncodeBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}
	}
	if len(b) <= 55 {
		out := make([]byte, 0, 1+len(b))
		out = append(out, byte(0x80+len(b)))
		return append(out, b...)
	}
	lenBytes := minimalBigEndian(uint64(len(b)))
	out := make([]byte, 0, 1+len(lenBytes)+len(b))
	out = append(out, byte(0xb7+len(lenBytes)))
	out = append(out, lenBytes...)
	return append(out, b...)
}

// EncodeString encodes the UTF-8 bytes of s as a scalar.
func EncodeString(s string) []byte {
	return EncodeBytes([]byte(s))
}

// EncodeBigInt encodes n as the minimal big-endian byte string, with
// zero encoding to the empty byte string (which EncodeBytes renders
// as [0x80]). Negative n is rejected as a programmer error.
func EncodeBigInt(n *big.Int) ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil big.Int", ErrInvalidInput)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative big.Int %s", ErrInvalidInput, n.String())
	}
	if n.Sign() == 0 {
		return EncodeBytes(nil), nil
	}
	return EncodeBytes(n.Bytes()), nil
}

// EncodeNumber requires n to be a non-negative integer and delegates
// to EncodeBigInt. Use EncodeBigInt directly for values that do not
// fit in an int64.
func EncodeNumber(n int64) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative number %d", ErrInvalidInput, n)
	}
	return EncodeBigInt(big.NewInt(n))
}

// EncodeList wraps already-encoded items in list framing:
//   - payload 0..55: [0xc0+plen] ++ payload
//   - payload > 55: [0xf7+lenOfLen] ++ bigEndianLen ++ payload
func EncodeList(items ...[]byte) []byte {
	var payload []byte
	for _, it := range items {
		payload = append(payload, it...)
	}
	if len(payload) <= 55 {
		out := make([]byte, 0, 1+len(payload))
		out = append(out, byte(0xc0+len(payload)))
		return append(out, payload...)
	}
	lenBytes := minimalBigEndian(uint64(len(payload)))
	out := make([]byte, 0, 1+len(lenBytes)+len(payload))
	out = append(out, byte(0xf7+len(lenBytes)))
	out = append(out, lenBytes...)
	return append(out, payload...)
}

// minimalBigEndian returns the shortest big-endian representation of
// n with no leading zero byte. n == 0 is the one case that yields a
// single zero byte.
func minimalBigEndian(n uint64) []byte {
	if n == 0 {
		return []byte{0}
	}
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(n & 0xff)
		n >>= 8
	}
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}
