package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyReturnsNewSnapshot(t *testing.T) {
	orig := DefaultSnapshot()
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	age := 50
	ira := decimal.NewFromInt(75000)
	mid := decimal.NewFromFloat(6.5)
	next := orig.Apply(Patch{
		Age:          &age,
		Assets:       &AssetsPatch{IRA: &ira},
		ROIScenarios: &ROIPatch{Mid: &mid},
	}, at)

	assert.Equal(t, 50, next.Age)
	assert.True(t, next.Assets.IRA.Equal(ira))
	assert.True(t, next.ROIScenarios.Mid.Equal(mid))
	assert.True(t, next.LastUpdated.Equal(at))

	// untouched fields survive
	assert.True(t, next.Assets.FourOhOneK.Equal(orig.Assets.FourOhOneK))
	assert.True(t, next.ROIScenarios.Low.Equal(orig.ROIScenarios.Low))

	// the receiver is unchanged
	assert.Equal(t, 45, orig.Age)
	assert.True(t, orig.Assets.IRA.Equal(decimal.NewFromInt(50000)))
	assert.True(t, orig.LastUpdated.IsZero())
}

func TestEmptyPatchOnlyStampsTime(t *testing.T) {
	orig := DefaultSnapshot()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var p Patch
	assert.True(t, p.IsEmpty())

	next := orig.Apply(p, at)
	orig.LastUpdated = at
	assert.True(t, next.Equal(orig))
}

func TestParseAssignments(t *testing.T) {
	p, coerced, err := ParseAssignments([]string{
		"age=52",
		"retirement_age=62.9",
		"assets.401k=$410,000",
		"roi.high=8%",
		"liabilities.mortgage=oops",
	})
	require.NoError(t, err)
	assert.False(t, p.IsEmpty())
	assert.Equal(t, []string{"liabilities.mortgage"}, coerced)

	next := DefaultSnapshot().Apply(p, time.Time{})
	assert.Equal(t, 52, next.Age)
	assert.Equal(t, 62, next.RetirementAge, "year fields keep the integer part")
	assert.True(t, next.Assets.FourOhOneK.Equal(decimal.NewFromInt(410000)))
	assert.True(t, next.ROIScenarios.High.Equal(decimal.NewFromInt(8)))
	assert.True(t, next.Liabilities.Mortgage.IsZero(), "malformed input coerces to zero")
}

func TestParseAssignmentsErrors(t *testing.T) {
	_, _, err := ParseAssignments([]string{"age"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")

	_, _, err = ParseAssignments([]string{"assets.boat=5"})
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestPatchFieldsRoundTrip(t *testing.T) {
	s := DefaultSnapshot()
	for _, f := range PatchFields {
		var p Patch
		f.Set(&p, f.Get(s))
		assert.False(t, p.IsEmpty(), f.Key)
		assert.True(t, s.Apply(p, s.LastUpdated).Equal(s), f.Key)
	}
	assert.Len(t, FieldKeys(), len(PatchFields))
}

func TestLookupFieldIsCaseInsensitive(t *testing.T) {
	f, ok := LookupField("  Assets.IRA ")
	require.True(t, ok)
	assert.Equal(t, "assets.ira", f.Key)
	assert.Equal(t, FieldAmount, f.Kind)
}

func TestCoerceNumber(t *testing.T) {
	v, ok := CoerceNumber(" 1_250.50 ")
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromFloat(1250.5)))

	v, ok = CoerceNumber("")
	assert.False(t, ok)
	assert.True(t, v.IsZero())
}
