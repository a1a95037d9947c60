package bank

import "github.com/tos-network/gbank/core/types"

// WithdrawRequest is the decoded form of a withdraw-request note's input
// vector.
type WithdrawRequest struct {
	Asset         types.Asset
	SerialNum     types.Word
	TagCommitment types.Word
}

// ParseWithdrawRequest decodes the frozen withdraw-request input layout.
//
// Layout (WithdrawRequestInputLen = 12 felts):
//
//	[0:4]  asset word [amount, 0, faucet_suffix, faucet_prefix]
//	[4:8]  serial number for the outgoing note (unique per note)
//	[8:12] routing-tag commitment, resolved via the advice provider
//
// Any arity or asset-layout violation fails with ErrMalformedInput.
func ParseWithdrawRequest(inputs []types.Felt) (WithdrawRequest, error) {
	if len(inputs) != WithdrawRequestInputLen {
		return WithdrawRequest{}, ErrMalformedInput
	}
	var req WithdrawRequest
	copy(req.Asset[:], inputs[0:4])
	copy(req.SerialNum[:], inputs[4:8])
	copy(req.TagCommitment[:], inputs[8:12])
	if err := req.Asset.Validate(); err != nil {
		return WithdrawRequest{}, ErrMalformedInput
	}
	return req, nil
}

// EncodeWithdrawRequest builds the input vector a caller attaches to a
// withdraw-request note, the inverse of ParseWithdrawRequest.
func EncodeWithdrawRequest(req WithdrawRequest) []types.Felt {
	out := make([]types.Felt, 0, WithdrawRequestInputLen)
	out = append(out, req.Asset[:]...)
	out = append(out, req.SerialNum[:]...)
	out = append(out, req.TagCommitment[:]...)
	return out
}
