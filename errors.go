package dartfin

import "errors"

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidPeriod = errors.New("invalid period")
	ErrNotFound      = errors.New("not found")
	ErrNoData        = errors.New("no data")
)
