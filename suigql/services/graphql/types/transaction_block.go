package types

type TransactionBlock struct {
	Digest   string                   `json:"digest"`
	Effects  *TransactionBlockEffects `json:"effects,omitempty"`
	Sender   *Address                 `json:"sender,omitempty"`
	Bcs      *Base64                  `json:"bcs,omitempty"`
	GasInput *GasInput                `json:"gasInput,omitempty"`
}

type TransactionBlockEffects struct {
	Digest     string      `json:"digest"`
	GasEffects *GasEffects `json:"gasEffects,omitempty"`
}
