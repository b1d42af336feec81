package finance

import "errors"

var (
	ErrTransactionNotFound          = errors.New("transaction not found")
	ErrMarketingTransactionNotFound = errors.New("marketing transaction not found")
	ErrInvalidTransactionType       = errors.New("invalid transaction type")
	ErrInvalidPeriod                = errors.New("invalid period")
)
