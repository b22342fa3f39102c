package enchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWorld struct {
	blocked map[Pos]bool
	powers  map[Pos]float64
}

func (w *fakeWorld) Air(pos Pos) bool {
	return !w.blocked[pos]
}

func (w *fakeWorld) EnchantPower(pos Pos) float64 {
	return w.powers[pos]
}

func shelfColumn(powers map[Pos]float64, x int, z int) {
	powers[Pos{x, 0, z}] = 1
	powers[Pos{x, 1, z}] = 1
}

func TestTablePowerEmpty(t *testing.T) {
	w := &fakeWorld{powers: map[Pos]float64{}}

	assert.Zero(t, TablePower(w, Pos{}))
}

func TestTablePowerSingleAxisColumn(t *testing.T) {
	powers := map[Pos]float64{}
	shelfColumn(powers, 2, 0)
	w := &fakeWorld{powers: powers}

	// Both shelf heights two blocks east count.
	assert.Equal(t, 2.0, TablePower(w, Pos{}))
}

func TestTablePowerBlockedGapSkipsColumn(t *testing.T) {
	powers := map[Pos]float64{}
	shelfColumn(powers, 2, 0)

	// A block in the gap at either height hides the shelves behind it.
	w := &fakeWorld{powers: powers, blocked: map[Pos]bool{{1, 0, 0}: true}}
	assert.Zero(t, TablePower(w, Pos{}))

	w = &fakeWorld{powers: powers, blocked: map[Pos]bool{{1, 1, 0}: true}}
	assert.Zero(t, TablePower(w, Pos{}))
}

func TestTablePowerDiagonalSamplesOffAxisColumns(t *testing.T) {
	powers := map[Pos]float64{}
	shelfColumn(powers, 2, 2)
	shelfColumn(powers, 2, 1)
	shelfColumn(powers, 1, 2)
	w := &fakeWorld{powers: powers}

	// The diagonal gap exposes the corner column and both columns beside it.
	assert.Equal(t, 6.0, TablePower(w, Pos{}))
}

func TestTablePowerOffsetOrigin(t *testing.T) {
	powers := map[Pos]float64{
		{12, 5, -3}: 1,
		{12, 6, -3}: 1,
	}
	w := &fakeWorld{powers: powers}

	assert.Equal(t, 2.0, TablePower(w, Pos{10, 5, -3}))
}
