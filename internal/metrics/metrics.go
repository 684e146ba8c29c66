// Package metrics wraps the fixedpoint overflow predicates with
// Prometheus counters, so a caller running release builds (where
// fixedpoint's own debug assertions are compiled out) can still get
// production visibility into how often an operation would have
// overflowed, without paying the debug-assert cost on the hot path
// itself. Grounded on this corpus's monitor.Metrics registration shape.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/govalues/fixedpoint"
)

// NearOverflow counts operations that would have overflowed their
// representation width, labeled by the operation and the width that
// almost wrapped.
type NearOverflow struct {
	counter *prometheus.CounterVec
}

// NewNearOverflow registers a near-overflow counter vector against reg
// and returns a handle for recording observations.
func NewNearOverflow(reg prometheus.Registerer) *NearOverflow {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fixedpoint_overflow_total",
		Help: "Count of fixedpoint arithmetic operations that would overflow their representation width.",
	}, []string{"op", "width"})
	reg.MustRegister(counter)
	return &NearOverflow{counter: counter}
}

// CountedAddI64 performs a Decimal64 addition and increments the
// near-overflow counter, labeled "add"/"64", whenever the operands
// would overflow I64 — whether or not this build's Add actually traps
// on it. The addition itself still runs, so release builds keep their
// wrap-on-overflow behavior; this only adds the observability release
// builds otherwise lack.
func (m *NearOverflow) CountedAddI64(lhs, rhs fixedpoint.Decimal64) fixedpoint.Decimal64 {
	if fixedpoint.AdditionOverflow(lhs.Value(), rhs.Value()) {
		m.counter.WithLabelValues("add", "64").Inc()
	}
	return lhs.Add(rhs)
}

// CountedMulI64 is the multiplication analogue of CountedAddI64.
func (m *NearOverflow) CountedMulI64(lhs, rhs fixedpoint.Decimal64) fixedpoint.Decimal64 {
	if fixedpoint.MultiplicationOverflow(lhs.Value(), rhs.Value()) {
		m.counter.WithLabelValues("mul", "64").Inc()
	}
	return lhs.Mul(rhs)
}

// CountedAddI32 is the I32 analogue of CountedAddI64, for the narrowest
// supported representation width where overflow is most likely.
func (m *NearOverflow) CountedAddI32(lhs, rhs fixedpoint.Decimal32) fixedpoint.Decimal32 {
	if fixedpoint.AdditionOverflow(lhs.Value(), rhs.Value()) {
		m.counter.WithLabelValues("add", "32").Inc()
	}
	return lhs.Add(rhs)
}
