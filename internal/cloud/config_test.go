package cloud

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMap(t *testing.T) {
	base := DefaultParams()
	got := FromMap(base, map[string]string{
		"size":             "128",
		"density":          "4",
		"spread":           "12.5",
		"fluffyness_min":   "-3",
		"fluffyness_mag":   "nope",
		"turbulence_scale": "32",
		"unknown":          "1",
	})
	assert.Equal(t, 128, got.Size)
	assert.Equal(t, 4, got.Density)
	assert.Equal(t, 12.5, got.Spread)
	assert.Equal(t, base.FluffynessMin, got.FluffynessMin)
	assert.Equal(t, base.FluffynessMag, got.FluffynessMag)
	assert.Equal(t, 32.0, got.TurbulenceScale)

	assert.Equal(t, base, FromMap(base, nil))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())

	broken := []func(*Params){
		func(p *Params) { p.Size = 0 },
		func(p *Params) { p.FluffynessMin = 0 },
		func(p *Params) { p.FluffynessMag = -1 },
		func(p *Params) { p.Spread = -1 },
		func(p *Params) { p.Density = -1 },
		func(p *Params) { p.TurbulenceScale = 0.5 },
	}
	for i, mutate := range broken {
		p := DefaultParams()
		mutate(&p)
		assert.Error(t, p.Validate(), "case %d", i)
	}
}

func TestSnapshotListsEveryParam(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, DefaultParams().Snapshot().Write(&buf))
	out := buf.String()
	for _, key := range []string{"size", "density", "spread", "fluffyness_min", "fluffyness_mag", "turbulence_scale"} {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "500")
}
