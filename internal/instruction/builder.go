// Package instruction builds unsigned Solana instruction descriptors for the
// SPL Token and System programs.
package instruction

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	"solana-instruction-api/internal/domain"
)

// Kind names a supported instruction.
type Kind string

const (
	KindInitializeMint Kind = "initialize_mint"
	KindMintTo         Kind = "mint_to"
	KindTransferToken  Kind = "transfer_token"
	KindTransferNative Kind = "transfer_native"
)

// InitializeMint builds an SPL Token InitializeMint instruction with no freeze authority.
// Accounts: [mint (writable), rent sysvar].
func InitializeMint(mint, mintAuthority solana.PublicKey, decimals uint8) (*domain.Instruction, error) {
	ix, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(decimals).
		SetMintAuthority(mintAuthority).
		SetMintAccount(mint).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		return nil, domain.BuildError(err)
	}
	return describe(ix)
}

// MintTo builds a single-signer SPL Token MintTo instruction.
// Accounts: [mint (writable), destination (writable), authority (signer)].
func MintTo(mint, destination, authority solana.PublicKey, amount uint64) (*domain.Instruction, error) {
	ix, err := token.NewMintToInstruction(amount, mint, destination, authority, nil).ValidateAndBuild()
	if err != nil {
		return nil, domain.BuildError(err)
	}
	return describe(ix)
}

// TransferToken builds an SPL Token Transfer out of the owner's associated
// token account for mint.
// Accounts: [source (writable), destination (writable), owner (signer)].
func TransferToken(mint, owner, destination solana.PublicKey, amount uint64) (*domain.Instruction, error) {
	source, err := AssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, domain.BuildError(err)
	}
	if source.Equals(destination) {
		return nil, domain.SameAccount("destination", "Source token account and destination cannot be the same")
	}

	ix, err := token.NewTransferInstruction(amount, source, destination, owner, nil).ValidateAndBuild()
	if err != nil {
		return nil, domain.BuildError(err)
	}
	return describe(ix)
}

// TransferNative builds a System program lamport transfer.
// Accounts: [from (writable, signer), to (writable)].
func TransferNative(from, to solana.PublicKey, lamports uint64) (*domain.Instruction, error) {
	if from.Equals(to) {
		return nil, domain.SameAccount("to", "Source and destination cannot be the same")
	}

	ix, err := system.NewTransferInstruction(lamports, from, to).ValidateAndBuild()
	if err != nil {
		return nil, domain.BuildError(err)
	}
	return describe(ix)
}

// describe copies an encoded instruction into a descriptor, keeping account
// order and flags exactly as the encoder produced them.
func describe(ix solana.Instruction) (*domain.Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return nil, domain.BuildError(err)
	}

	metas := ix.Accounts()
	accounts := make([]domain.AccountRef, 0, len(metas))
	for _, m := range metas {
		accounts = append(accounts, domain.AccountRef{
			Address:    m.PublicKey,
			IsSigner:   m.IsSigner,
			IsWritable: m.IsWritable,
		})
	}

	return domain.NewInstruction(ix.ProgramID(), accounts, data), nil
}
