package domain

import (
	"errors"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNoMatchingPackage = errors.New("no matching package")
	ErrInvestmentClosed  = errors.New("investment already closed")

	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrSelfReferral        = errors.New("self referral is not allowed")

	ErrUnsupportedNetwork = errors.New("unsupported pay currency")
)
