package types

// Status values an epic or story moves through during its lifecycle.
// The zero-ish default for new items is StatusOpen.
const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "InProgress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// Status is the lifecycle state of an epic or story. It serializes as one of
// the four tag strings above; there is no ordering beyond display.
type Status string

// validStatuses is the set of recognized status values.
var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// AllStatuses lists every status in menu order.
var AllStatuses = []Status{
	StatusOpen,
	StatusInProgress,
	StatusResolved,
	StatusClosed,
}

// Valid reports whether s is one of the recognized status values.
func (s Status) Valid() bool {
	return validStatuses[s]
}

// Display returns the uppercase label shown in page tables.
func (s Status) Display() string {
	switch s {
	case StatusOpen:
		return "OPEN"
	case StatusInProgress:
		return "IN PROGRESS"
	case StatusResolved:
		return "RESOLVED"
	case StatusClosed:
		return "CLOSED"
	default:
		return string(s)
	}
}
