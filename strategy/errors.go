package strategy

import "errors"

var (
	ErrRangeOutOfBounds      = errors.New("range percent out of bounds")
	ErrInvestmentNotPositive = errors.New("investment must be positive")
	ErrInvestmentNegative    = errors.New("investment must not be negative")
	ErrEmptyBasket           = errors.New("basket is empty")
	ErrPriceNotPositive      = errors.New("price must be positive")
	ErrUnknownSide           = errors.New("unknown order side")
	ErrGridSizeNotPositive   = errors.New("grid size must be positive")
)
