package client

import (
	"encoding/json"
	"fmt"

	"github.com/NilFoundation/suigql/suigql/internal/types"
)

type PastObjectStatus string

const (
	VersionFound    PastObjectStatus = "VersionFound"
	ObjectNotExists PastObjectStatus = "ObjectNotExists"
	ObjectDeleted   PastObjectStatus = "ObjectDeleted"
	VersionNotFound PastObjectStatus = "VersionNotFound"
	VersionTooHigh  PastObjectStatus = "VersionTooHigh"
)

// PastObjectResponse is the result of a historical object lookup.
// Which fields are set depends on Status:
//   - VersionFound: Object
//   - ObjectNotExists: ObjectId
//   - ObjectDeleted: DeletedRef
//   - VersionNotFound: ObjectId, AskedVersion
//   - VersionTooHigh: ObjectId, AskedVersion, LatestVersion
type PastObjectResponse struct {
	Status        PastObjectStatus
	Object        *ObjectData
	DeletedRef    *ObjectRef
	ObjectId      types.ObjectID
	AskedVersion  types.SequenceNumber
	LatestVersion types.SequenceNumber
}

type pastObjectEnvelope struct {
	Status  PastObjectStatus `json:"status"`
	Details json.RawMessage  `json:"details"`
}

type versionTooHighDetails struct {
	ObjectId      types.ObjectID       `json:"object_id"`
	AskedVersion  types.SequenceNumber `json:"asked_version"`
	LatestVersion types.SequenceNumber `json:"latest_version"`
}

func (r PastObjectResponse) MarshalJSON() ([]byte, error) {
	var details any
	switch r.Status {
	case VersionFound:
		details = r.Object
	case ObjectNotExists:
		details = r.ObjectId
	case ObjectDeleted:
		details = r.DeletedRef
	case VersionNotFound:
		details = []any{r.ObjectId, r.AskedVersion}
	case VersionTooHigh:
		details = versionTooHighDetails{
			ObjectId:      r.ObjectId,
			AskedVersion:  r.AskedVersion,
			LatestVersion: r.LatestVersion,
		}
	default:
		return nil, fmt.Errorf("unknown past object status %q", r.Status)
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	return json.Marshal(pastObjectEnvelope{Status: r.Status, Details: raw})
}

func (r *PastObjectResponse) UnmarshalJSON(input []byte) error {
	var envelope pastObjectEnvelope
	if err := json.Unmarshal(input, &envelope); err != nil {
		return err
	}

	*r = PastObjectResponse{Status: envelope.Status}
	switch envelope.Status {
	case VersionFound:
		r.Object = new(ObjectData)
		return json.Unmarshal(envelope.Details, r.Object)
	case ObjectNotExists:
		return json.Unmarshal(envelope.Details, &r.ObjectId)
	case ObjectDeleted:
		r.DeletedRef = new(ObjectRef)
		return json.Unmarshal(envelope.Details, r.DeletedRef)
	case VersionNotFound:
		var pair []json.RawMessage
		if err := json.Unmarshal(envelope.Details, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("expected (object id, version) pair, got %d elements", len(pair))
		}
		if err := json.Unmarshal(pair[0], &r.ObjectId); err != nil {
			return err
		}
		return json.Unmarshal(pair[1], &r.AskedVersion)
	case VersionTooHigh:
		var details versionTooHighDetails
		if err := json.Unmarshal(envelope.Details, &details); err != nil {
			return err
		}
		r.ObjectId, r.AskedVersion, r.LatestVersion = details.ObjectId, details.AskedVersion, details.LatestVersion
		return nil
	}
	return fmt.Errorf("unknown past object status %q", envelope.Status)
}
