package types

const (
	// EventTypeCw20Adapter is emitted once per handled command
	EventTypeCw20Adapter = "cw20_adapter"

	AttributeKeyAction   = "action"
	AttributeKeyCw20     = "cw20_address"
	AttributeKeyDenom    = "denom"
	AttributeKeyAmount   = "amount"
	AttributeKeySender   = "sender"
	AttributeKeyReceiver = "recipient"

	ActionRegister       = "register_cw20_contract"
	ActionReceive        = "receive"
	ActionRedeem         = "redeem"
	ActionUpdateMetadata = "update_metadata"
)
