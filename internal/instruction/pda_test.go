package instruction

import (
	"testing"

	blocto "github.com/blocto/solana-go-sdk/common"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociatedTokenAddress_MatchesReferenceImplementations(t *testing.T) {
	usdc := solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

	for i := 0; i < 16; i++ {
		owner := solana.NewWallet().PublicKey()

		got, err := AssociatedTokenAddress(owner, usdc)
		require.NoError(t, err)

		want, _, err := solana.FindAssociatedTokenAddress(owner, usdc)
		require.NoError(t, err)
		assert.Equal(t, want, got, "gagliardetto mismatch for owner %s", owner)

		ref, _, err := blocto.FindAssociatedTokenAddress(
			blocto.PublicKeyFromBytes(owner[:]),
			blocto.PublicKeyFromBytes(usdc[:]),
		)
		require.NoError(t, err)
		assert.Equal(t, ref.ToBase58(), got.String(), "blocto mismatch for owner %s", owner)
	}
}

func TestAssociatedTokenAddress_Deterministic(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	a, err := AssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	b, err := AssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := AssociatedTokenAddress(mint, owner)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "owner and mint roles must not be interchangeable")
}

func TestFindProgramAddress_OffCurve(t *testing.T) {
	seeds := [][]byte{[]byte("metadata"), solana.TokenProgramID[:]}
	addr, bump, err := FindProgramAddress(seeds, solana.SPLAssociatedTokenAccountProgramID)
	require.NoError(t, err)
	assert.False(t, isOnCurve(addr[:]))

	again, err := CreateProgramAddress(append(seeds, []byte{bump}), solana.SPLAssociatedTokenAccountProgramID)
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	want, wantBump, err := solana.FindProgramAddress(seeds, solana.SPLAssociatedTokenAccountProgramID)
	require.NoError(t, err)
	assert.Equal(t, want, addr)
	assert.Equal(t, wantBump, bump)
}

func TestCreateProgramAddress_SeedLimits(t *testing.T) {
	_, err := CreateProgramAddress([][]byte{make([]byte, 33)}, solana.SystemProgramID)
	assert.Error(t, err)

	tooMany := make([][]byte, 17)
	_, err = CreateProgramAddress(tooMany, solana.SystemProgramID)
	assert.Error(t, err)
}

func TestIsOnCurve(t *testing.T) {
	// every wallet public key is a curve point
	assert.True(t, isOnCurve(solana.NewWallet().PublicKey().Bytes()))
	assert.False(t, isOnCurve([]byte{1, 2, 3}))
}
