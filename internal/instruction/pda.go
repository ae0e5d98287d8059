package instruction

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/gagliardetto/solana-go"
)

const (
	maxSeeds      = 16
	maxSeedLength = 32
	pdaMarker     = "ProgramDerivedAddress"
)

// ErrNoViableBump is returned when every bump seed hashes onto the curve.
var ErrNoViableBump = errors.New("unable to find a viable program address bump seed")

// CreateProgramAddress hashes seeds under programID.
// Returns an error if the result lies on the ed25519 curve.
func CreateProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, error) {
	if len(seeds) > maxSeeds {
		return solana.PublicKey{}, fmt.Errorf("too many seeds: %d", len(seeds))
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > maxSeedLength {
			return solana.PublicKey{}, fmt.Errorf("seed too long: %d bytes", len(seed))
		}
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))

	var addr solana.PublicKey
	copy(addr[:], h.Sum(nil))

	if isOnCurve(addr[:]) {
		return solana.PublicKey{}, errors.New("derived address is on the ed25519 curve")
	}
	return addr, nil
}

// FindProgramAddress searches bump seeds from 255 down to 0 and returns the
// first off-curve address together with its bump.
func FindProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		addr, err := CreateProgramAddress(withBump, programID)
		if err == nil {
			return addr, uint8(bump), nil
		}
	}
	return solana.PublicKey{}, 0, ErrNoViableBump
}

// AssociatedTokenAddress derives the canonical token account holding mint for owner.
// Seeds: [owner, token_program_id, mint]
func AssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := FindProgramAddress(
		[][]byte{owner[:], solana.TokenProgramID[:], mint[:]},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive associated token address: %w", err)
	}
	return addr, nil
}

func isOnCurve(point []byte) bool {
	if len(point) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}
