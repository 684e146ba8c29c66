package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/govalues/fixedpoint"
)

func TestNearOverflow_CountedAddI32_CountsOnlyOverflowingAdds(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewNearOverflow(reg)

	a := fixedpoint.New[fixedpoint.I32, fixedpoint.Base10](1, 0)
	b := fixedpoint.New[fixedpoint.I32, fixedpoint.Base10](2, 0)
	_ = m.CountedAddI32(a, b)
	require.Equal(t, 0.0, counterValue(t, reg, "add", "32"))

	max := fixedpoint.New[fixedpoint.I32, fixedpoint.Base10](fixedpoint.MaxI32, 0)
	one := fixedpoint.New[fixedpoint.I32, fixedpoint.Base10](1, 0)
	_ = m.CountedAddI32(max, one)
	require.Equal(t, 1.0, counterValue(t, reg, "add", "32"))
}

func counterValue(t *testing.T, reg *prometheus.Registry, op, width string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "fixedpoint_overflow_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if labelsMatch(metric.GetLabel(), op, width) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(labels []*dto.LabelPair, op, width string) bool {
	var gotOp, gotWidth string
	for _, l := range labels {
		switch l.GetName() {
		case "op":
			gotOp = l.GetValue()
		case "width":
			gotWidth = l.GetValue()
		}
	}
	return gotOp == op && gotWidth == width
}
