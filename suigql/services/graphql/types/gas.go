package types

type GasInput struct {
	GasSponsor *Address  `json:"gasSponsor,omitempty"`
	GasPayment []*Object `json:"gasPayment,omitempty"`
	GasPrice   *BigInt   `json:"gasPrice,omitempty"`
	GasBudget  *BigInt   `json:"gasBudget,omitempty"`
}

type GasCostSummary struct {
	ComputationCost         *BigInt `json:"computationCost,omitempty"`
	StorageCost             *BigInt `json:"storageCost,omitempty"`
	StorageRebate           *BigInt `json:"storageRebate,omitempty"`
	NonRefundableStorageFee *BigInt `json:"nonRefundableStorageFee,omitempty"`
}

type GasEffects struct {
	GasObject  *Object         `json:"gasObject,omitempty"`
	GasSummary *GasCostSummary `json:"gasSummary,omitempty"`
}
