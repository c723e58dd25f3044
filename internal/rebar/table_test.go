package rebar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/rcdetail/internal/model"
)

func TestLookupSpellings(t *testing.T) {
	for _, name := range []string{`3/4"`, "3/4", "3/4in", " Ø3/4\" ", "3/4''"} {
		b, ok := Find(name)
		assert.True(t, ok, name)
		assert.Equal(t, `3/4"`, b.Name, name)
	}
	b, ok := Find(`1 3/8"`)
	assert.True(t, ok)
	assert.Equal(t, 10.06, b.AreaCM2)
}

func TestUnknownFallsBackToDefault(t *testing.T) {
	_, ok := Find("7/8\"")
	assert.False(t, ok)
	assert.Equal(t, DefaultName, Lookup("7/8\"").Name)
	assert.Equal(t, DefaultName, Lookup("").Name)
}

func TestHookLengthForThreeQuarter(t *testing.T) {
	assert.InDelta(t, 0.70, Length(`3/4"`, model.Hook, model.Bottom), 1e-9)
	assert.InDelta(t, 0.70, Length(`3/4"`, model.Hook, model.Top), 1e-9)
	assert.InDelta(t, 0.90, Length(`3/4"`, model.DevelopmentLength, model.Bottom), 1e-9)
	assert.InDelta(t, 1.15, Length(`3/4"`, model.DevelopmentLength, model.Top), 1e-9)
	assert.InDelta(t, 1.15, Length(`3/4"`, model.Continuous, model.Top), 1e-9)
}

func TestTableIsMonotonic(t *testing.T) {
	bars := Bars()
	for i := 1; i < len(bars); i++ {
		assert.Greater(t, bars[i].DiameterMM, bars[i-1].DiameterMM)
		assert.Greater(t, bars[i].AreaCM2, bars[i-1].AreaCM2)
		assert.GreaterOrEqual(t, bars[i].AnchorTopCM, bars[i].AnchorBottomCM)
	}
}

func TestArea(t *testing.T) {
	assert.InDelta(t, 3*1.99, Area(`5/8"`, 3), 1e-9)
	assert.Zero(t, Area(`5/8"`, 0))
	assert.Zero(t, Area(`5/8"`, -2))
}
