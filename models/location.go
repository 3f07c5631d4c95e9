package models

import "strconv"

// Location identifies a physical dining hall. The numeric value doubles as
// the menu API's "unit" parameter.
type Location int

const (
	Moulton Location = 48
	Thorne  Location = 49
)

// AllLocations lists every dining hall in fetch order.
var AllLocations = []Location{Thorne, Moulton}

// Name returns the plain display name of the dining hall.
func (l Location) Name() string {
	switch l {
	case Moulton:
		return "Moulton Union"
	case Thorne:
		return "Thorne"
	default:
		return "Unit " + strconv.Itoa(int(l))
	}
}

// DisplayName returns the emoji-prefixed name used in outgoing messages.
func (l Location) DisplayName() string {
	switch l {
	case Moulton:
		return "🏠 Moulton Union"
	case Thorne:
		return "🌲 Thorne"
	default:
		return l.Name()
	}
}

// UnitParam returns the value sent as the menu API's unit field.
func (l Location) UnitParam() string {
	return strconv.Itoa(int(l))
}
