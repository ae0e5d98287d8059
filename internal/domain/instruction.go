package domain

import "github.com/gagliardetto/solana-go"

// AccountRef is an account's role within an instruction.
type AccountRef struct {
	Address    solana.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction describes one unit of on-ledger work prior to signing.
// Fields are unexported so a built descriptor cannot be altered; accessors return copies.
type Instruction struct {
	programID solana.PublicKey
	accounts  []AccountRef
	data      []byte
}

// NewInstruction copies its inputs into an immutable descriptor.
func NewInstruction(programID solana.PublicKey, accounts []AccountRef, data []byte) *Instruction {
	ix := &Instruction{
		programID: programID,
		accounts:  make([]AccountRef, len(accounts)),
		data:      make([]byte, len(data)),
	}
	copy(ix.accounts, accounts)
	copy(ix.data, data)
	return ix
}

// ProgramID returns the program that executes the instruction.
func (ix *Instruction) ProgramID() solana.PublicKey {
	return ix.programID
}

// Accounts returns the ordered account list.
func (ix *Instruction) Accounts() []AccountRef {
	out := make([]AccountRef, len(ix.accounts))
	copy(out, ix.accounts)
	return out
}

// Data returns the opaque instruction payload.
func (ix *Instruction) Data() []byte {
	out := make([]byte, len(ix.data))
	copy(out, ix.data)
	return out
}
