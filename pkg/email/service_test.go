package email

import (
	"testing"

	"github.com/menshealthfinder/api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_ConsoleModeWithoutKey(t *testing.T) {
	s := NewService("hello@menshealthfinder.com", "Men's Health Finder", "https://menshealthfinder.com", "")
	assert.False(t, s.useSendGrid)

	s = NewService("hello@menshealthfinder.com", "Men's Health Finder", "https://menshealthfinder.com", "SG.test-key")
	assert.True(t, s.useSendGrid)
}

func TestSendUpgradePitch_ConsoleModeNeverFails(t *testing.T) {
	s := NewService("hello@menshealthfinder.com", "Men's Health Finder", "https://menshealthfinder.com", "")

	err := s.SendUpgradePitch("owner@apexclinic.com", UpgradePitch{
		ClinicName:     "Apex Men's Health",
		City:           "Austin",
		State:          "TX",
		MonthlyRevenue: 4800,
		PrimaryIssue:   "not indexed by search engines",
	})
	require.NoError(t, err)
}

func TestSendTierActivated_ConsoleModeNeverFails(t *testing.T) {
	s := NewService("hello@menshealthfinder.com", "Men's Health Finder", "https://menshealthfinder.com", "")
	require.NoError(t, s.SendTierActivated("owner@apexclinic.com", "Apex Men's Health", "standard"))
}

func TestSend_CountsDeliveriesByTemplate(t *testing.T) {
	s := NewService("hello@menshealthfinder.com", "Men's Health Finder", "https://menshealthfinder.com", "")
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	s.SetMetrics(m)

	require.NoError(t, s.SendTierActivated("owner@apexclinic.com", "Apex Men's Health", "standard"))
	require.NoError(t, s.SendUpgradePitch("owner@apexclinic.com", UpgradePitch{
		ClinicName:     "Apex Men's Health",
		City:           "Austin",
		State:          "TX",
		MonthlyRevenue: 4800,
		PrimaryIssue:   "not indexed by search engines",
	}))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.EmailsSent.WithLabelValues("tier_activated")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EmailsSent.WithLabelValues("upgrade_pitch")))
}

func TestSendTaskDigest_ConsoleModeNeverFails(t *testing.T) {
	s := NewService("hello@menshealthfinder.com", "Men's Health Finder", "https://menshealthfinder.com", "")
	require.NoError(t, s.SendTaskDigest("ops@menshealthfinder.com", "Ops", []string{
		"Send welcome email to Dr. Reed",
		"Follow-up call with Lone Star Wellness",
	}))
}
