package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// InstantiateMsg carries no configuration.
type InstantiateMsg struct{}

// ExecuteMsg is the adapter command surface. Exactly one field must be set.
type ExecuteMsg struct {
	// RegisterCw20Contract registers a new CW-20 contract handled by the adapter
	RegisterCw20Contract *RegisterCw20Contract `json:"register_cw20_contract,omitempty"`
	// Receive implements the CW-20 receiver interface
	Receive *Cw20ReceiveMsg `json:"receive,omitempty"`
	// RedeemAndTransfer burns the attached factory tokens and transfers the CW-20 tokens
	RedeemAndTransfer *RedeemAndTransfer `json:"redeem_and_transfer,omitempty"`
	// RedeemAndSend burns the attached factory tokens and sends the CW-20 tokens with a message
	RedeemAndSend *RedeemAndSend `json:"redeem_and_send,omitempty"`
	// UpdateMetadata copies the CW-20 token info onto the factory denom
	UpdateMetadata *UpdateMetadata `json:"update_metadata,omitempty"`
}

type RegisterCw20Contract struct {
	Addr string `json:"addr"`
}

// Cw20ReceiveMsg is the payload a CW-20 contract delivers on Send. Sender is
// the account that sent the tokens, not the calling contract.
type Cw20ReceiveMsg struct {
	Sender string      `json:"sender"`
	Amount sdkmath.Int `json:"amount"`
	Msg    []byte      `json:"msg"`
}

type RedeemAndTransfer struct {
	Recipient *string `json:"recipient,omitempty"`
}

type RedeemAndSend struct {
	Recipient string `json:"recipient"`
	Submsg    []byte `json:"submsg"`
}

type UpdateMetadata struct {
	Addr string `json:"addr"`
}

// ValidateBasic performs stateless checks.
func (m ExecuteMsg) ValidateBasic() error {
	set := 0
	for _, present := range []bool{
		m.RegisterCw20Contract != nil,
		m.Receive != nil,
		m.RedeemAndTransfer != nil,
		m.RedeemAndSend != nil,
		m.UpdateMetadata != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return errorsmod.Wrapf(ErrInvalidExecuteMsg, "expected exactly one variant, got %d", set)
	}

	if m.Receive != nil {
		if m.Receive.Sender == "" {
			return errorsmod.Wrap(ErrInvalidExecuteMsg, "empty receive sender")
		}
		if m.Receive.Amount.IsNil() || !m.Receive.Amount.IsPositive() {
			return errorsmod.Wrap(ErrInvalidExecuteMsg, "receive amount must be positive")
		}
	}
	if m.RedeemAndSend != nil && m.RedeemAndSend.Recipient == "" {
		return errorsmod.Wrap(ErrInvalidExecuteMsg, "empty redeem recipient")
	}
	return nil
}

// Action names the variant for events and metrics.
func (m ExecuteMsg) Action() string {
	switch {
	case m.RegisterCw20Contract != nil:
		return ActionRegister
	case m.Receive != nil:
		return ActionReceive
	case m.RedeemAndTransfer != nil, m.RedeemAndSend != nil:
		return ActionRedeem
	case m.UpdateMetadata != nil:
		return ActionUpdateMetadata
	default:
		return ""
	}
}

// QueryMsg is the adapter query surface. Exactly one field must be set.
type QueryMsg struct {
	// RegisteredContracts returns the registered CW-20 contracts
	RegisteredContracts *RegisteredContractsQuery `json:"registered_contracts,omitempty"`
	// NewDenomFee returns the fee required to register a new token-factory denom
	NewDenomFee *struct{} `json:"new_denom_fee,omitempty"`
	// ContractVersion returns the name and version recorded on instantiation
	ContractVersion *struct{} `json:"contract_version,omitempty"`
}

type RegisteredContractsQuery struct {
	StartAfter string `json:"start_after,omitempty"`
	Limit      uint32 `json:"limit,omitempty"`
}

func (m QueryMsg) ValidateBasic() error {
	set := 0
	for _, present := range []bool{m.RegisteredContracts != nil, m.NewDenomFee != nil, m.ContractVersion != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return errorsmod.Wrapf(ErrInvalidQueryMsg, "expected exactly one variant, got %d", set)
	}
	return nil
}

// ContractVersion mirrors cw2 contract info.
type ContractVersion struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

// Response is the outcome of a handled command: instructions for the host to
// execute in order, plus event attributes describing the command.
type Response struct {
	Messages   []sdk.Msg
	Attributes []sdk.Attribute
}

func NewResponse(action string) *Response {
	return &Response{Attributes: []sdk.Attribute{sdk.NewAttribute(AttributeKeyAction, action)}}
}

func (r *Response) AddMessages(msgs ...sdk.Msg) *Response {
	r.Messages = append(r.Messages, msgs...)
	return r
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, sdk.NewAttribute(key, value))
	return r
}

// Event renders the response attributes as a single module event.
func (r *Response) Event() sdk.Event {
	return sdk.NewEvent(EventTypeCw20Adapter, r.Attributes...)
}

// MustMarshalExecuteMsg is used by clients building adapter payloads.
func MustMarshalExecuteMsg(msg ExecuteMsg) []byte {
	bz, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return bz
}

// MessageInfo describes the caller of a command and the funds it attached.
// The funds are already held by the adapter when a handler runs.
type MessageInfo struct {
	Sender sdk.AccAddress
	Funds  sdk.Coins
}

var _ sdk.Msg = &MsgExecute{}

func NewMsgExecute(sender string, msg ExecuteMsg, funds sdk.Coins) *MsgExecute {
	return &MsgExecute{
		Sender: sender,
		Msg:    MustMarshalExecuteMsg(msg),
		Funds:  funds,
	}
}

// ParseExecuteMsg decodes the JSON command carried by the message.
func (m *MsgExecute) ParseExecuteMsg() (*ExecuteMsg, error) {
	var msg ExecuteMsg
	if err := json.Unmarshal(m.Msg, &msg); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrJSONUnmarshal, "failed to unmarshal execute msg: %v", err)
	}
	return &msg, nil
}

// ValidateBasic performs stateless checks. Receive is only delivered by
// CW-20 contracts, so accounts cannot submit it.
func (m *MsgExecute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address (%s)", err)
	}
	if err := m.Funds.Validate(); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "%s", err)
	}

	msg, err := m.ParseExecuteMsg()
	if err != nil {
		return err
	}
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.Receive != nil {
		return errorsmod.Wrap(ErrInvalidExecuteMsg, "receive can only be called by a CW-20 contract")
	}
	return nil
}
