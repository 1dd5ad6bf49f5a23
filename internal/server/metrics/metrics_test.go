package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.Registration(OutcomeOK)
	m.Registration(OutcomeDuplicate)
	m.Authentication(OutcomeInvalidCredentials)
	m.Authentication(OutcomeInvalidCredentials)
	m.Rotation(OutcomeSessionExpired)
	m.Logout()
	m.Swept(3)
	m.Swept(0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues(OutcomeDuplicate)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.authentications.WithLabelValues(OutcomeInvalidCredentials)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rotations.WithLabelValues(OutcomeSessionExpired)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logouts))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.swept))
}

func TestRegistryExposition(t *testing.T) {
	m := New()
	m.Rotation(OutcomeOK)

	expected := `
# HELP gophauth_rotations_total Refresh token rotations by outcome.
# TYPE gophauth_rotations_total counter
gophauth_rotations_total{outcome="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "gophauth_rotations_total"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Registration(OutcomeOK)
		m.Authentication(OutcomeOK)
		m.Rotation(OutcomeOK)
		m.Logout()
		m.Swept(1)
	})
}
