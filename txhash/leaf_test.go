package txhash

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashStableForEqualLeaves(t *testing.T) {
	leaf := TxLeaf{Kind: KindTransfer, Sender: "alice", Recipient: "bob", Value: big.NewInt(1000), Height: 10}
	h1, err := Hash(leaf)
	require.NoError(t, err)
	h2, err := Hash(leaf)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestHashDiffersByKind(t *testing.T) {
	base := TxLeaf{Sender: "alice", Recipient: "bob", Value: big.NewInt(1000), Height: 10}
	transfer := base
	transfer.Kind = KindTransfer
	ack := base
	ack.Kind = KindSplitAck

	h1, err := Hash(transfer)
	require.NoError(t, err)
	h2, err := Hash(ack)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestHashRejectsUnrecognizedKind(t *testing.T) {
	_, err := Hash(TxLeaf{Kind: Kind(99)})
	require.Error(t, err)
}

func TestEncodeNilValueTreatedAsZero(t *testing.T) {
	leaf := TxLeaf{Kind: KindRewardClaim, Sender: "x", Recipient: "y"}
	enc, err := Encode(leaf)
	require.NoError(t, err)
	require.NotEmpty(t, enc)
}
