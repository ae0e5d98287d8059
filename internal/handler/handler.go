// Package handler orchestrates each endpoint: it extracts and validates
// request fields in a fixed order, calls the matching builder or signing
// routine, and shapes the response payload. The first failure is returned as
// a *domain.Error; nothing partial is ever produced.
package handler

import (
	"solana-instruction-api/internal/codec"
	"solana-instruction-api/internal/domain"
	"solana-instruction-api/internal/instruction"
	"solana-instruction-api/internal/signing"
	"solana-instruction-api/internal/validate"
)

// Handlers is safe for concurrent use; it holds only immutable policy.
type Handlers struct {
	policy validate.Policy
}

// New creates handlers using the given validation policy.
func New(policy validate.Policy) *Handlers {
	return &Handlers{policy: policy}
}

// GenerateKeypair handles POST /keypair.
func (h *Handlers) GenerateKeypair() (*KeypairResponse, error) {
	kp, err := signing.GenerateKeypair()
	if err != nil {
		return nil, err
	}
	return &KeypairResponse{
		Pubkey: kp.PublicKey.String(),
		Secret: codec.EncodeBase58(kp.Secret),
	}, nil
}

// CreateToken handles POST /token/create.
func (h *Handlers) CreateToken(req *CreateTokenRequest) (*InstructionResponse, error) {
	authority, err := validate.RequiredAddress("mintAuthority", req.MintAuthority)
	if err != nil {
		return nil, err
	}
	mint, err := validate.RequiredAddress("mint", req.Mint)
	if err != nil {
		return nil, err
	}
	decimals, err := validate.RequiredDecimals(req.Decimals)
	if err != nil {
		return nil, err
	}
	if err := validate.Distinct(mint, authority, "mintAuthority", "Mint and mint authority cannot be the same"); err != nil {
		return nil, err
	}

	ix, err := instruction.InitializeMint(mint, authority, decimals)
	if err != nil {
		return nil, err
	}
	return instructionResponse(ix), nil
}

// MintToken handles POST /token/mint.
func (h *Handlers) MintToken(req *MintTokenRequest) (*InstructionResponse, error) {
	mint, err := validate.RequiredAddress("mint", req.Mint)
	if err != nil {
		return nil, err
	}
	destination, err := validate.RequiredAddress("destination", req.Destination)
	if err != nil {
		return nil, err
	}
	authority, err := validate.RequiredAddress("authority", req.Authority)
	if err != nil {
		return nil, err
	}
	amount, err := h.policy.RequiredAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	if err := validate.Distinct(destination, mint, "destination", "Destination cannot be the mint account"); err != nil {
		return nil, err
	}

	ix, err := instruction.MintTo(mint, destination, authority, amount)
	if err != nil {
		return nil, err
	}
	return instructionResponse(ix), nil
}

// SendToken handles POST /send/token.
func (h *Handlers) SendToken(req *SendTokenRequest) (*TokenTransferResponse, error) {
	destination, err := validate.RequiredAddress("destination", req.Destination)
	if err != nil {
		return nil, err
	}
	mint, err := validate.RequiredAddress("mint", req.Mint)
	if err != nil {
		return nil, err
	}
	owner, err := validate.RequiredAddress("owner", req.Owner)
	if err != nil {
		return nil, err
	}
	amount, err := h.policy.RequiredAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	ix, err := instruction.TransferToken(mint, owner, destination, amount)
	if err != nil {
		return nil, err
	}

	refs := ix.Accounts()
	accounts := make([]SignerMeta, 0, len(refs))
	for _, a := range refs {
		accounts = append(accounts, SignerMeta{Pubkey: a.Address.String(), IsSigner: a.IsSigner})
	}
	return &TokenTransferResponse{
		ProgramID:       ix.ProgramID().String(),
		Accounts:        accounts,
		InstructionData: codec.EncodeBase64(ix.Data()),
	}, nil
}

// SendSol handles POST /send/sol.
func (h *Handlers) SendSol(req *SendSolRequest) (*SolTransferResponse, error) {
	from, err := validate.RequiredAddress("from", req.From)
	if err != nil {
		return nil, err
	}
	to, err := validate.RequiredAddress("to", req.To)
	if err != nil {
		return nil, err
	}
	lamports, err := h.policy.RequiredAmount("lamports", req.Lamports)
	if err != nil {
		return nil, err
	}

	ix, err := instruction.TransferNative(from, to, lamports)
	if err != nil {
		return nil, err
	}

	refs := ix.Accounts()
	accounts := make([]string, 0, len(refs))
	for _, a := range refs {
		accounts = append(accounts, a.Address.String())
	}
	return &SolTransferResponse{
		ProgramID:       ix.ProgramID().String(),
		Accounts:        accounts,
		InstructionData: codec.EncodeBase64(ix.Data()),
	}, nil
}

// SignMessage handles POST /message/sign.
func (h *Handlers) SignMessage(req *SignMessageRequest) (*SignMessageResponse, error) {
	message, err := validate.RequiredRaw("message", req.Message)
	if err != nil {
		return nil, err
	}
	if err := validate.Message(message); err != nil {
		return nil, err
	}
	secretText, err := validate.Required("secret", req.Secret)
	if err != nil {
		return nil, err
	}
	secret, err := validate.Secret(secretText)
	if err != nil {
		return nil, err
	}

	res, err := signing.Sign(message, secret)
	if err != nil {
		return nil, err
	}
	return &SignMessageResponse{
		Signature: codec.EncodeBase64(res.Signature[:]),
		PublicKey: res.PublicKey.String(),
		Message:   message,
	}, nil
}

// VerifyMessage handles POST /message/verify.
func (h *Handlers) VerifyMessage(req *VerifyMessageRequest) (*VerifyMessageResponse, error) {
	message, err := validate.RequiredRaw("message", req.Message)
	if err != nil {
		return nil, err
	}
	if err := validate.Message(message); err != nil {
		return nil, err
	}
	sigText, err := validate.Required("signature", req.Signature)
	if err != nil {
		return nil, err
	}
	sig, err := validate.Signature(sigText)
	if err != nil {
		return nil, err
	}
	pubkey, err := validate.RequiredAddress("pubkey", req.Pubkey)
	if err != nil {
		return nil, err
	}

	return &VerifyMessageResponse{
		Valid:   signing.Verify(message, sig, pubkey),
		Message: message,
		Pubkey:  pubkey.String(),
	}, nil
}

func instructionResponse(ix *domain.Instruction) *InstructionResponse {
	refs := ix.Accounts()
	accounts := make([]AccountMeta, 0, len(refs))
	for _, a := range refs {
		accounts = append(accounts, AccountMeta{
			Pubkey:     a.Address.String(),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		})
	}
	return &InstructionResponse{
		ProgramID:       ix.ProgramID().String(),
		Accounts:        accounts,
		InstructionData: codec.EncodeBase64(ix.Data()),
	}
}
