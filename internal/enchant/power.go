package enchant

// Pos is a block position in world space.
type Pos struct {
	X int
	Y int
	Z int
}

// World is the minimal view of the host world the power scan needs.
type World interface {
	// Air reports whether the block at pos is air.
	Air(pos Pos) bool

	// EnchantPower is the enchanting power the block at pos contributes,
	// zero for anything that is not a bookshelf.
	EnchantPower(pos Pos) float64
}

// TablePower samples the enchanting power available to a table at pos.
// Each of the eight columns adjacent to the table contributes only if both
// of its blocks are air; the bookshelf column two blocks out then counts at
// table height and one above. Diagonal gaps additionally expose the two
// off-axis columns beside them.
func TablePower(w World, pos Pos) float64 {
	x, y, z := pos.X, pos.Y, pos.Z

	var power float64

	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			if dz == 0 && dx == 0 {
				continue
			}

			if !w.Air(Pos{x + dx, y, z + dz}) || !w.Air(Pos{x + dx, y + 1, z + dz}) {
				continue
			}

			power += w.EnchantPower(Pos{x + dx*2, y, z + dz*2})
			power += w.EnchantPower(Pos{x + dx*2, y + 1, z + dz*2})

			if dx != 0 && dz != 0 {
				power += w.EnchantPower(Pos{x + dx*2, y, z + dz})
				power += w.EnchantPower(Pos{x + dx*2, y + 1, z + dz})
				power += w.EnchantPower(Pos{x + dx, y, z + dz*2})
				power += w.EnchantPower(Pos{x + dx, y + 1, z + dz*2})
			}
		}
	}

	return power
}
