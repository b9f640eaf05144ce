package testaide

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/NilFoundation/suigql/suigql/client"
	"github.com/NilFoundation/suigql/suigql/internal/types"
)

const MoveObjectType = "0x2::coin::Coin<0x2::sui::SUI>"

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

func RandomAddress() types.Address {
	return types.BytesToAddress(randomBytes(types.AddrSize))
}

func RandomDigest() types.Digest {
	var d types.Digest
	copy(d[:], randomBytes(types.DigestSize))
	return d
}

func RandomVersion() types.SequenceNumber {
	// Far below the uint64 limit, so tests can ask for newer versions.
	return types.SequenceNumber(binary.LittleEndian.Uint32(randomBytes(4))) + 1
}

// NewMoveObject builds a fully populated move object owned by owner.
func NewMoveObject(owner types.Owner) *client.ObjectData {
	version := RandomVersion()
	previousTx := RandomDigest()
	rebate := types.U64(988_000)
	objectType := MoveObjectType
	return &client.ObjectData{
		ObjectId:            RandomAddress(),
		Version:             version,
		Digest:              RandomDigest(),
		Type:                &objectType,
		Owner:               &owner,
		PreviousTransaction: &previousTx,
		StorageRebate:       &rebate,
		Bcs: &client.RawData{
			MoveObject: &client.RawMoveObject{
				Type:              objectType,
				HasPublicTransfer: true,
				Version:           version,
				BcsBytes:          randomBytes(40),
			},
		},
	}
}

// NewPackage builds an immutable package object with a single module, type origin and linkage entry.
func NewPackage() *client.ObjectData {
	id := RandomAddress()
	owner := types.NewImmutableOwner()
	previousTx := RandomDigest()
	rebate := types.U64(0)
	objectType := "package"
	dependency := RandomAddress()
	return &client.ObjectData{
		ObjectId:            id,
		Version:             1,
		Digest:              RandomDigest(),
		Type:                &objectType,
		Owner:               &owner,
		PreviousTransaction: &previousTx,
		StorageRebate:       &rebate,
		Bcs: &client.RawData{
			Package: &client.RawMovePackage{
				Id:      id,
				Version: 1,
				ModuleMap: map[string][]byte{
					"counter": {0xa1, 0x1c, 0xeb, 0x0b, 0x06},
				},
				TypeOriginTable: []client.TypeOrigin{
					{ModuleName: "counter", StructName: "Counter", Package: id},
				},
				LinkageTable: map[types.ObjectID]client.UpgradeInfo{
					dependency: {UpgradedId: dependency, UpgradedVersion: 3},
				},
			},
		},
	}
}

// NewTransaction builds a transaction paid with the given gas coins, the first of which is reported as the gas object.
func NewTransaction(sender types.Address, gasCoins ...*client.ObjectData) *client.TransactionBlockResponse {
	digest := RandomDigest()
	payment := make([]client.ObjectRef, 0, len(gasCoins))
	for _, coin := range gasCoins {
		payment = append(payment, coin.Ref())
	}

	effects := &client.TransactionBlockEffects{
		MessageVersion: "v1",
		Status:         client.ExecutionStatus{Status: "success"},
		ExecutedEpoch:  412,
		GasUsed: client.GasCostSummary{
			ComputationCost:         750_000,
			StorageCost:             2_964_000,
			StorageRebate:           978_120,
			NonRefundableStorageFee: 9_880,
		},
		TransactionDigest: digest,
	}
	if len(gasCoins) > 0 {
		effects.GasObject = client.OwnedObjectRef{
			Owner:     *gasCoins[0].Owner,
			Reference: gasCoins[0].Ref(),
		}
	}

	return &client.TransactionBlockResponse{
		Digest: digest,
		Transaction: &client.TransactionBlock{
			Data: client.TransactionBlockData{
				MessageVersion: "v1",
				Sender:         sender,
				GasData: client.GasData{
					Payment: payment,
					Owner:   sender,
					Price:   750,
					Budget:  50_000_000,
				},
			},
			TxSignatures: []string{"AA=="},
		},
		RawTransaction: randomBytes(64),
		Effects:        effects,
	}
}
