package cluster

import "testing"

func TestEngineFor_AutoDispatchBoundaries(t *testing.T) {
	cases := []struct {
		n    int
		want Engine
	}{
		{0, EngineNaive},
		{1, EngineNaive},
		{2, EngineNaive},
		{naiveThreshold, EngineNaive},
		{naiveThreshold + 1, EngineGeom},
		{geomThreshold, EngineGeom},
		{geomThreshold + 1, EngineTiled},
	}
	for _, c := range cases {
		if got := engineFor(c.n, DefaultConfig()); got != c.want {
			t.Errorf("engineFor(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestEngineFor_OverrideWinsRegardlessOfSize(t *testing.T) {
	cfg := resolveConfig([]Option{WithEngine(EngineTiled)})
	if got := engineFor(1, cfg); got != EngineTiled {
		t.Errorf("engineFor with override = %v, want EngineTiled", got)
	}
}
