package server

import (
	"fmt"

	"github.com/NilFoundation/suigql/suigql/client"
	suitypes "github.com/NilFoundation/suigql/suigql/internal/types"
	"github.com/NilFoundation/suigql/suigql/services/graphql/types"
)

func SuiAddressFromNative(a suitypes.Address) types.SuiAddress {
	return types.SuiAddressFromArray(a)
}

func NativeAddress(a types.SuiAddress) suitypes.Address {
	return suitypes.Address(a.IntoArray())
}

func AddressFromNative(a suitypes.Address) *types.Address {
	return types.NewAddress(SuiAddressFromNative(a))
}

func ConvertObjectKind(owner suitypes.Owner) (types.ObjectKind, error) {
	switch owner.Kind {
	case suitypes.AddressOwner:
		return types.ObjectKindOwned, nil
	case suitypes.ObjectOwner:
		return types.ObjectKindChild, nil
	case suitypes.SharedOwner:
		return types.ObjectKindShared, nil
	case suitypes.ImmutableOwner:
		return types.ObjectKindImmutable, nil
	}
	return 0, fmt.Errorf("%w: unknown owner kind %s", ErrInternal, owner.Kind)
}

// ConvertObject requires the owner and the previous transaction to be present,
// which holds for objects requested with full content.
func ConvertObject(data *client.ObjectData) (*types.Object, error) {
	if data.Owner == nil {
		return nil, fmt.Errorf("%w: object %s has no owner", ErrInternal, data.ObjectId)
	}
	if data.PreviousTransaction == nil {
		return nil, fmt.Errorf("%w: object %s has no previous transaction", ErrInternal, data.ObjectId)
	}

	kind, err := ConvertObjectKind(*data.Owner)
	if err != nil {
		return nil, err
	}

	obj := &types.Object{
		Version: uint64(data.Version),
		Digest:  data.Digest.String(),
		Address: SuiAddressFromNative(data.ObjectId),
		Kind:    &kind,
	}
	if data.StorageRebate != nil {
		rebate := uint64(*data.StorageRebate)
		obj.StorageRebate = &rebate
	}
	if owner, ok := data.Owner.OwnerAddress(); ok {
		addr := SuiAddressFromNative(owner)
		obj.Owner = &addr
	}
	if data.Bcs != nil {
		raw, err := data.Bcs.Bytes()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		bcs := types.Base64(raw)
		obj.Bcs = &bcs
	}
	previousTx := data.PreviousTransaction.String()
	obj.PreviousTransaction = &previousTx
	return obj, nil
}

func ConvertBalance(b *client.Balance) (*types.Balance, error) {
	total, err := types.ParseBigInt(b.TotalBalance.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return &types.Balance{
		CoinObjectCount: b.CoinObjectCount,
		TotalBalance:    total,
	}, nil
}

func ConvertGasCostSummary(s *client.GasCostSummary) *types.GasCostSummary {
	return &types.GasCostSummary{
		ComputationCost:         types.NewBigInt(uint64(s.ComputationCost)),
		StorageCost:             types.NewBigInt(uint64(s.StorageCost)),
		StorageRebate:           types.NewBigInt(uint64(s.StorageRebate)),
		NonRefundableStorageFee: types.NewBigInt(uint64(s.NonRefundableStorageFee)),
	}
}

// ConvertProtocolConfig keeps the order of the node; unset attributes get an empty value.
func ConvertProtocolConfig(cfg *client.ProtocolConfigResponse) *types.ProtocolConfigs {
	res := &types.ProtocolConfigs{
		Configs:         make([]types.ProtocolConfigAttr, 0),
		FeatureFlags:    make([]types.ProtocolConfigFeatureFlag, 0),
		ProtocolVersion: uint64(cfg.ProtocolVersion),
	}

	if cfg.Attributes != nil {
		for pair := cfg.Attributes.Oldest(); pair != nil; pair = pair.Next() {
			attr := types.ProtocolConfigAttr{Key: pair.Key}
			if pair.Value != nil {
				attr.Value = pair.Value.String()
			}
			res.Configs = append(res.Configs, attr)
		}
	}

	if cfg.FeatureFlags != nil {
		for pair := cfg.FeatureFlags.Oldest(); pair != nil; pair = pair.Next() {
			res.FeatureFlags = append(res.FeatureFlags, types.ProtocolConfigFeatureFlag{Key: pair.Key, Value: pair.Value})
		}
	}
	return res
}
