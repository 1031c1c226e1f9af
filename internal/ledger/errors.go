package ledger

import "errors"

// Every failed operation returns one of these and leaves the ledger unchanged.
var (
	ErrInvalidAmount     = errors.New("amount must be a valid non-negative number")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDuplicateName     = errors.New("category name already in use")
	ErrUnknownCategory   = errors.New("category does not exist")
	ErrSelfTransfer      = errors.New("cannot transfer money to the same category")
)
