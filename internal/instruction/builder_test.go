package instruction

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-instruction-api/internal/domain"
)

func newKey() solana.PublicKey {
	return solana.NewWallet().PublicKey()
}

func TestInitializeMint(t *testing.T) {
	mint := newKey()
	authority := newKey()

	ix, err := InitializeMint(mint, authority, 6)
	require.NoError(t, err)

	assert.Equal(t, solana.TokenProgramID, ix.ProgramID())
	assert.Equal(t, []domain.AccountRef{
		{Address: mint, IsSigner: false, IsWritable: true},
		{Address: solana.SysVarRentPubkey, IsSigner: false, IsWritable: false},
	}, ix.Accounts())

	data := ix.Data()
	require.Len(t, data, 35)
	assert.Equal(t, byte(0), data[0], "InitializeMint tag")
	assert.Equal(t, byte(6), data[1], "decimals")
	assert.Equal(t, authority[:], data[2:34])
	assert.Equal(t, byte(0), data[34], "freeze authority must be absent")
}

func TestMintTo(t *testing.T) {
	mint := newKey()
	destination := newKey()
	authority := newKey()

	ix, err := MintTo(mint, destination, authority, 1_000_000)
	require.NoError(t, err)

	assert.Equal(t, solana.TokenProgramID, ix.ProgramID())
	assert.Equal(t, []domain.AccountRef{
		{Address: mint, IsSigner: false, IsWritable: true},
		{Address: destination, IsSigner: false, IsWritable: true},
		{Address: authority, IsSigner: true, IsWritable: false},
	}, ix.Accounts())

	data := ix.Data()
	require.Len(t, data, 9)
	assert.Equal(t, byte(7), data[0], "MintTo tag")
	assert.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[1:]))
}

func TestTransferToken(t *testing.T) {
	mint := newKey()
	owner := newKey()
	destination := newKey()

	ix, err := TransferToken(mint, owner, destination, 250)
	require.NoError(t, err)

	source, err := AssociatedTokenAddress(owner, mint)
	require.NoError(t, err)

	assert.Equal(t, solana.TokenProgramID, ix.ProgramID())
	assert.Equal(t, []domain.AccountRef{
		{Address: source, IsSigner: false, IsWritable: true},
		{Address: destination, IsSigner: false, IsWritable: true},
		{Address: owner, IsSigner: true, IsWritable: false},
	}, ix.Accounts())

	data := ix.Data()
	require.Len(t, data, 9)
	assert.Equal(t, byte(3), data[0], "Transfer tag")
	assert.Equal(t, uint64(250), binary.LittleEndian.Uint64(data[1:]))
}

func TestTransferToken_DestinationIsDerivedSource(t *testing.T) {
	mint := newKey()
	owner := newKey()
	source, err := AssociatedTokenAddress(owner, mint)
	require.NoError(t, err)

	_, err = TransferToken(mint, owner, source, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSameAccount)
}

func TestTransferNative(t *testing.T) {
	from := newKey()
	to := newKey()

	ix, err := TransferNative(from, to, 5000)
	require.NoError(t, err)

	assert.Equal(t, solana.SystemProgramID, ix.ProgramID())
	assert.Equal(t, []domain.AccountRef{
		{Address: from, IsSigner: true, IsWritable: true},
		{Address: to, IsSigner: false, IsWritable: true},
	}, ix.Accounts())

	data := ix.Data()
	require.Len(t, data, 12)
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[:4]), "Transfer tag")
	assert.Equal(t, uint64(5000), binary.LittleEndian.Uint64(data[4:]))
}

func TestTransferNative_SameAccount(t *testing.T) {
	from := newKey()
	for _, lamports := range []uint64{0, 1, 5000, 1 << 62} {
		_, err := TransferNative(from, from, lamports)
		assert.ErrorIs(t, err, domain.ErrSameAccount, "lamports=%d", lamports)
	}
}
