package chem

// Periodic table layout used by the element picker. Rows and columns are
// zero-based; columns span 0..17, rows 0..8 (the last two rows hold the
// detached lanthanide and actinide series).
const (
	TableCols = 18
	TableRows = 9
)

// TableCell returns the (row, col) picker position for an atomic number,
// following the conventional 18-column arrangement. Every z in
// [1, MaxAtomicNumber] maps to a distinct cell.
func TableCell(z int) (row, col int) {
	switch {
	case z == 1:
		return 0, 0
	case z == 2:
		return 0, 17
	case z <= 4: // Li, Be
		return 1, z - 3
	case z <= 10: // B..Ne
		return 1, z - 5 + 12
	case z <= 12: // Na, Mg
		return 2, z - 11
	case z <= 18: // Al..Ar
		return 2, z - 13 + 12
	case z <= 20: // K, Ca
		return 3, z - 19
	case z <= 30: // Sc..Zn
		return 3, z - 21 + 2
	case z <= 36: // Ga..Kr
		return 3, z - 31 + 12
	case z <= 38: // Rb, Sr
		return 4, z - 37
	case z <= 48: // Y..Cd
		return 4, z - 39 + 2
	case z <= 54: // In..Xe
		return 4, z - 49 + 12
	case z <= 56: // Cs, Ba
		return 5, z - 55
	case z <= 71: // Lanthanides, detached row
		return 7, z - 57 + 2
	case z <= 86: // Hf..Rn
		return 5, z - 72 + 3
	case z <= 88: // Fr, Ra
		return 6, z - 87
	case z <= 103: // Actinides, detached row
		return 8, z - 89 + 2
	default: // Rf..Og
		return 6, z - 104 + 3
	}
}
