package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"

	FieldDuration = "duration"
	FieldUrl      = "url"
	FieldReqId    = "reqId"
	FieldAttempt  = "attempt"

	FieldRpcMethod = "rpcMethod"
	FieldRpcParams = "rpcParams"
	FieldRpcResult = "rpcResult"

	FieldOperation = "operation"

	FieldObjectId      = "objectId"
	FieldObjectVersion = "objectVersion"
	FieldOwner         = "owner"
	FieldCursor        = "cursor"
	FieldPageSize      = "pageSize"
	FieldCoinType      = "coinType"

	FieldTransactionDigest = "txnDigest"
	FieldProtocolVersion   = "protocolVersion"
)
