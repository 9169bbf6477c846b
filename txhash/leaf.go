// Package txhash models the dynamic-shape transaction leaves hashed
// through the deterministic encoder, generalizing the teacher's
// tagged core.Transaction/Encode-on-construct pattern from gob+sha256
// to the length-prefixed encoder plus Keccak-256 — the hash this
// ecosystem pairs with an RLP-flavored wire format.
package txhash

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"splitchain/encoding"
)

// Kind tags the variant-specific payload a TxLeaf carries. Dispatch
// over Kind is a guaranteed-exhaustive switch (spec.md §9 design
// note 1); Hash returns an error for any value outside this set.
type Kind uint8

const (
	KindTransfer Kind = iota + 1
	KindSplitAck
	KindRewardClaim
)

// TxLeaf is one item hashed as a leaf of a transaction set. Encode
// (and so Hash) writes all six fields for every Kind; fields the
// caller leaves unset are encoded as their zero values.
type TxLeaf struct {
	Kind      Kind
	Sender    string
	Recipient string
	Value     *big.Int
	Height    int64
	Factor    int
}

// Encode renders leaf into the deterministic encoder's byte image: a
// list of [kind, sender, recipient, value, height, factor], each a
// scalar encoded per package encoding's rules.
func Encode(leaf TxLeaf) ([]byte, error) {
	value := leaf.Value
	if value == nil {
		value = big.NewInt(0)
	}
	valueBytes, err := encoding.EncodeBigInt(value)
	if err != nil {
		return nil, fmt.Errorf("txhash: encoding value: %w", err)
	}
	kindBytes, err := encoding.EncodeNumber(int64(leaf.Kind))
	if err != nil {
		return nil, fmt.Errorf("txhash: encoding kind: %w", err)
	}
	heightBytes, err := encoding.EncodeNumber(leaf.Height)
	if err != nil {
		return nil, fmt.Errorf("txhash: encoding height: %w", err)
	}
	factorBytes, err := encoding.EncodeNumber(int64(leaf.Factor))
	if err != nil {
		return nil, fmt.Errorf("txhash: encoding factor: %w", err)
	}

	switch leaf.Kind {
	case KindTransfer, KindSplitAck, KindRewardClaim:
		return encoding.EncodeList(
			kindBytes,
			encoding.EncodeString(leaf.Sender),
			encoding.EncodeString(leaf.Recipient),
			valueBytes,
			heightBytes,
			factorBytes,
		), nil
	default:
		return nil, fmt.Errorf("txhash: unrecognized leaf kind %d", leaf.Kind)
	}
}

// Hash encodes leaf and returns its Keccak-256 digest.
func Hash(leaf TxLeaf) ([]byte, error) {
	enc, err := Encode(leaf)
	if err != nil {
		return nil, err
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(enc)
	return h.Sum(nil), nil
}
