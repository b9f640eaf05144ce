package server

import "errors"

var (
	ErrInvalidCursor               = errors.New("invalid cursor")
	ErrCursorNoBeforeAfter         = errors.New("'before' and 'after' must not be used together")
	ErrCursorNoFirstLast           = errors.New("'first' and 'last' must not be used together")
	ErrCursorNoReversePagination   = errors.New("reverse pagination is not supported")
	ErrCursorConnectionFetchFailed = errors.New("failed to fetch connection page")
	ErrInternal                    = errors.New("internal error occurred while processing request")
)
