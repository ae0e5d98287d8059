package handler

import "solana-instruction-api/internal/validate"

// Request bodies. Pointer fields distinguish absent from empty.

type CreateTokenRequest struct {
	MintAuthority *string          `json:"mintAuthority"`
	Mint          *string          `json:"mint"`
	Decimals      *validate.Amount `json:"decimals"`
}

type MintTokenRequest struct {
	Mint        *string          `json:"mint"`
	Destination *string          `json:"destination"`
	Authority   *string          `json:"authority"`
	Amount      *validate.Amount `json:"amount"`
}

type SendTokenRequest struct {
	Destination *string          `json:"destination"`
	Mint        *string          `json:"mint"`
	Owner       *string          `json:"owner"`
	Amount      *validate.Amount `json:"amount"`
}

type SendSolRequest struct {
	From     *string          `json:"from"`
	To       *string          `json:"to"`
	Lamports *validate.Amount `json:"lamports"`
}

type SignMessageRequest struct {
	Message *string `json:"message"`
	Secret  *string `json:"secret"`
}

type VerifyMessageRequest struct {
	Message   *string `json:"message"`
	Signature *string `json:"signature"`
	Pubkey    *string `json:"pubkey"`
}

// Response payloads, carried in the envelope's data field.

type KeypairResponse struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

// AccountMeta is an account entry with signer and writable flags.
type AccountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

// SignerMeta is an account entry with only the signer flag.
type SignerMeta struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"isSigner"`
}

type InstructionResponse struct {
	ProgramID       string        `json:"program_id"`
	Accounts        []AccountMeta `json:"accounts"`
	InstructionData string        `json:"instruction_data"`
}

type TokenTransferResponse struct {
	ProgramID       string       `json:"program_id"`
	Accounts        []SignerMeta `json:"accounts"`
	InstructionData string       `json:"instruction_data"`
}

type SolTransferResponse struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"`
}

type SignMessageResponse struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

type VerifyMessageResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}
