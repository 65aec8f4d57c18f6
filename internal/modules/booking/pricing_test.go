package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCharge_ParsesVenueRate(t *testing.T) {
	rate, total := ComputeCharge("750", 90)

	assert.Equal(t, "750.00", rate.StringFixed(2))
	assert.Equal(t, "1125.00", total.StringFixed(2))
}

func TestComputeCharge_FullHour(t *testing.T) {
	rate, total := ComputeCharge("1200", 60)

	assert.Equal(t, "1200.00", rate.StringFixed(2))
	assert.Equal(t, "1200.00", total.StringFixed(2))
}

func TestComputeCharge_FallsBackOnMalformedRate(t *testing.T) {
	for _, spec := range []string{"", "   ", "contact us", "-100", "12,50"} {
		rate, total := ComputeCharge(spec, 60)

		assert.Equal(t, "800.00", rate.StringFixed(2), "spec %q", spec)
		assert.Equal(t, "800.00", total.StringFixed(2), "spec %q", spec)
	}
}

func TestComputeCharge_RoundsHalfUp(t *testing.T) {
	// 333.33 / 2 = 166.665, rounds up to 166.67.
	rate, total := ComputeCharge("333.33", 30)

	assert.Equal(t, "333.33", rate.StringFixed(2))
	assert.Equal(t, "166.67", total.StringFixed(2))
}

func TestComputeCharge_RoundsRateSpec(t *testing.T) {
	rate, _ := ComputeCharge("99.999", 60)

	assert.Equal(t, "100.00", rate.StringFixed(2))
}

func TestComputeCharge_Deterministic(t *testing.T) {
	r1, t1 := ComputeCharge("850.75", 45)
	r2, t2 := ComputeCharge("850.75", 45)

	assert.True(t, r1.Equal(r2))
	assert.True(t, t1.Equal(t2))
	assert.Equal(t, "638.06", t1.StringFixed(2))
}
