package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstree/builder"
)

func TestIDFns(t *testing.T) {
	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},
		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},
		{"PrefixIDFn", builder.PrefixIDFn("v"), 12, "v12", false},
		{"PrefixIDFn_neg", builder.PrefixIDFn("v"), -1, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestIDScheme(t *testing.T) {
	assert.Equal(t, "7", builder.IDScheme("")(7))
	assert.Equal(t, "7", builder.IDScheme("decimal")(7))
	assert.Equal(t, "AB", builder.IDScheme("letters")(27))
	assert.Equal(t, "n3", builder.IDScheme("n")(3))
}

func TestWeightFns(t *testing.T) {
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 5) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })

	rng := rand.New(rand.NewSource(42))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, int64(7), builder.ConstantWeightFn(7)(rng))
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 9)(nil))
	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(rng))

	u := builder.UniformWeightFn(10, 20)
	for i := 0; i < 200; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, int64(10))
		assert.LessOrEqual(t, w, int64(20))

		w = builder.From1To100WeightFn(rng)
		assert.GreaterOrEqual(t, w, int64(1))
		assert.LessOrEqual(t, w, int64(100))
	}
}
