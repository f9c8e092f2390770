package domain

import "strconv"

// CellKind is the rendering category of one grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellPartial
	CellCompleted
)

// String returns the kind name
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellPartial:
		return "partial"
	case CellCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// CellState is the derived visual state of a cell. Hours is only set for
// CellPartial.
type CellState struct {
	Kind  CellKind
	Hours float64
}

// Label is the compact text shown inside a cell: a check mark for
// completed days, the hour count for partial days and nothing otherwise.
func (c CellState) Label() string {
	switch c.Kind {
	case CellCompleted:
		return "✓"
	case CellPartial:
		return FormatHours(c.Hours)
	default:
		return ""
	}
}

// FormatHours renders hours as the shortest decimal that round-trips,
// e.g. 1.5, 0.25 or 2.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
