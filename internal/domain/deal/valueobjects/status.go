package valueobjects

// DealStatus is the lifecycle status of a deal. Deletion is not a status;
// it removes the record entirely. Expiration is a read-time condition
// derived from the expiry timestamp, never a stored status.
type DealStatus string

const (
	StatusActive   DealStatus = "active"
	StatusPaused   DealStatus = "paused"
	StatusArchived DealStatus = "archived"
)

func (s DealStatus) String() string {
	return string(s)
}

// IsPubliclyListable reports whether deals in this status may appear in
// public listings (subject to the expiry filter applied at query time).
func (s DealStatus) IsPubliclyListable() bool {
	return s == StatusActive
}

// CanTransitionTo reports whether the lifecycle allows moving from s to
// target. The graph:
//
//	active   -> paused, archived
//	paused   -> active, archived
//	archived -> active (restore only, with a fresh expiry)
func (s DealStatus) CanTransitionTo(target DealStatus) bool {
	transitions := map[DealStatus][]DealStatus{
		StatusActive:   {StatusPaused, StatusArchived},
		StatusPaused:   {StatusActive, StatusArchived},
		StatusArchived: {StatusActive},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[DealStatus]bool{
	StatusActive:   true,
	StatusPaused:   true,
	StatusArchived: true,
}
