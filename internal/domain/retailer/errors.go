package retailer

import "errors"

var (
	ErrProfileNotFound   = errors.New("retailer profile not found")
	ErrProfileInactive   = errors.New("retailer profile is inactive")
	ErrNotProfileOwner   = errors.New("caller does not own this retailer profile")
	ErrCSVNotPermitted   = errors.New("retailer profile lacks CSV import permission")
)
