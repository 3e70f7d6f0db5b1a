package deal

import (
	"errors"
	"fmt"
)

var (
	ErrDealNotFound            = errors.New("deal not found")
	ErrQuotaExceeded           = errors.New("daily deal quota exceeded")
	ErrDealExpired             = errors.New("deal expired")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrDealTypeNotFound        = errors.New("deal type not found")
	ErrImageNotFound           = errors.New("deal image not found")
	ErrTooManyImages           = errors.New("too many deal images")
)

// ErrInvalidTransition decorates ErrInvalidStatusTransition with the
// attempted edge for error messages.
func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
