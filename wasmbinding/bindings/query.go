package bindings

// Cw20AdapterQuery is the custom query contracts use to locate the adapter
// and the factory denom of a CW-20 contract without a smart query.
type Cw20AdapterQuery struct {
	AdapterAddress *struct{}          `json:"adapter_address,omitempty"`
	AdapterDenom   *AdapterDenomQuery `json:"adapter_denom,omitempty"`
}

type AdapterDenomQuery struct {
	Cw20 string `json:"cw20"`
}

type AdapterAddressResponse struct {
	Address string `json:"address"`
}

type AdapterDenomResponse struct {
	Denom      string `json:"denom"`
	Registered bool   `json:"registered"`
}
