package testaide

import (
	"context"
	"log"

	"github.com/NilFoundation/suigql/suigql/client"
	"github.com/NilFoundation/suigql/suigql/internal/types"
)

// ClientMockSetObjects makes the mock serve the latest versions of the given objects by id,
// both one by one and in batches. Unknown ids are reported as not existing.
func ClientMockSetObjects(mock *client.ReadClientMock, objects ...*client.ObjectData) {
	byId := make(map[types.ObjectID]*client.ObjectData, len(objects))
	for _, obj := range objects {
		if prev, ok := byId[obj.ObjectId]; ok && prev.Version >= obj.Version {
			log.Panicf("object %s versions are not increasing", obj.ObjectId)
		}
		byId[obj.ObjectId] = obj
	}

	respond := func(id types.ObjectID) *client.ObjectResponse {
		if obj, ok := byId[id]; ok {
			return &client.ObjectResponse{Data: obj}
		}
		return &client.ObjectResponse{
			Error: &client.ObjectResponseError{Code: client.ErrCodeNotExists, ObjectId: &id},
		}
	}

	mock.GetObjectWithOptionsFunc = func(
		_ context.Context, id types.ObjectID, _ *client.ObjectDataOptions,
	) (*client.ObjectResponse, error) {
		return respond(id), nil
	}

	mock.MultiGetObjectsWithOptionsFunc = func(
		_ context.Context, ids []types.ObjectID, _ *client.ObjectDataOptions,
	) ([]*client.ObjectResponse, error) {
		res := make([]*client.ObjectResponse, 0, len(ids))
		for _, id := range ids {
			res = append(res, respond(id))
		}
		return res, nil
	}
}
