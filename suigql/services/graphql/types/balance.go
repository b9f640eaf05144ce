package types

type Balance struct {
	CoinObjectCount uint64  `json:"coinObjectCount"`
	TotalBalance    *BigInt `json:"totalBalance"`
}
