package types

import (
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Cw20ExecuteMsg is the subset of the CW-20 execute interface the adapter emits.
type Cw20ExecuteMsg struct {
	Transfer *Cw20Transfer `json:"transfer,omitempty"`
	Send     *Cw20Send     `json:"send,omitempty"`
}

type Cw20Transfer struct {
	Recipient string      `json:"recipient"`
	Amount    sdkmath.Int `json:"amount"`
}

type Cw20Send struct {
	Contract string      `json:"contract"`
	Amount   sdkmath.Int `json:"amount"`
	Msg      []byte      `json:"msg"`
}

// Cw20QueryMsg is the subset of the CW-20 query interface the adapter uses.
type Cw20QueryMsg struct {
	TokenInfo *struct{} `json:"token_info,omitempty"`
}

// TokenInfoResponse is the CW-20 answer to a token_info query.
type TokenInfoResponse struct {
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Decimals    uint8       `json:"decimals"`
	TotalSupply sdkmath.Int `json:"total_supply"`
}

// Validate rejects responses that decoded but do not look like CW-20 token info.
func (r TokenInfoResponse) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("empty token name")
	}
	if r.Symbol == "" {
		return fmt.Errorf("empty token symbol")
	}
	if r.TotalSupply.IsNil() {
		return fmt.Errorf("missing total supply")
	}
	return nil
}

// TokenInfoQuery returns the encoded {"token_info":{}} query.
func TokenInfoQuery() []byte {
	bz, err := json.Marshal(Cw20QueryMsg{TokenInfo: &struct{}{}})
	if err != nil {
		panic(err)
	}
	return bz
}

// NewCw20TransferMsg encodes a CW-20 transfer of amount to recipient.
func NewCw20TransferMsg(recipient string, amount sdkmath.Int) ([]byte, error) {
	return json.Marshal(Cw20ExecuteMsg{Transfer: &Cw20Transfer{Recipient: recipient, Amount: amount}})
}

// NewCw20SendMsg encodes a CW-20 send of amount to contract carrying msg. A
// nil msg is encoded as empty binary since CW-20 requires the field.
func NewCw20SendMsg(contract string, amount sdkmath.Int, msg []byte) ([]byte, error) {
	if msg == nil {
		msg = []byte{}
	}
	return json.Marshal(Cw20ExecuteMsg{Send: &Cw20Send{Contract: contract, Amount: amount, Msg: msg}})
}
