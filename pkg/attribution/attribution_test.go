package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_UTMPrecedence(t *testing.T) {
	// Paid UTM wins regardless of referrer.
	got := Classify(
		"https://menshealthfinder.com/clinics/austin?utm_source=google&utm_medium=cpc",
		"https://www.facebook.com/some/post",
	)
	assert.Equal(t, SourcePaid, got)
}

func TestClassify_UTMSocial(t *testing.T) {
	got := Classify("https://menshealthfinder.com/?utm_source=instagram&utm_medium=bio", "")
	assert.Equal(t, SourceSocial, got)
}

func TestClassify_UTMEmail(t *testing.T) {
	got := Classify("https://menshealthfinder.com/?utm_source=brevo&utm_medium=email", "")
	assert.Equal(t, SourceEmail, got)
}

func TestClassify_UTMReferralMedium(t *testing.T) {
	got := Classify("https://menshealthfinder.com/?utm_source=partnerblog&utm_medium=referral", "")
	assert.Equal(t, SourceReferral, got)
}

func TestClassify_UnrecognizedUTMIsReferral(t *testing.T) {
	// A UTM-tagged link someone placed is campaign traffic even when the
	// source and medium match no known bucket.
	got := Classify("https://menshealthfinder.com/?utm_source=partnerwidget&utm_medium=banner", "")
	assert.Equal(t, SourceReferral, got)
}

func TestClassify_ReferrerOrganic(t *testing.T) {
	got := Classify("https://menshealthfinder.com/clinics/austin", "https://www.google.com/search?q=trt+austin")
	assert.Equal(t, SourceOrganic, got)

	got = Classify("https://menshealthfinder.com/", "https://duckduckgo.com/?q=mens+clinic")
	assert.Equal(t, SourceOrganic, got)
}

func TestClassify_ReferrerSocial(t *testing.T) {
	got := Classify("https://menshealthfinder.com/", "https://m.facebook.com/groups/123")
	assert.Equal(t, SourceSocial, got)

	got = Classify("https://menshealthfinder.com/", "https://t.co/abc123")
	assert.Equal(t, SourceSocial, got)
}

func TestClassify_ReferrerExternalIsReferral(t *testing.T) {
	got := Classify("https://menshealthfinder.com/", "https://healthblog.example.org/top-clinics")
	assert.Equal(t, SourceReferral, got)
}

func TestClassify_EmptyReferrerIsDirect(t *testing.T) {
	got := Classify("https://menshealthfinder.com/", "")
	assert.Equal(t, SourceDirect, got)
}

func TestClassify_SameSiteReferrerIsDirect(t *testing.T) {
	got := Classify("https://menshealthfinder.com/clinics/austin", "https://www.menshealthfinder.com/")
	assert.Equal(t, SourceDirect, got)
}

func TestClassify_GarbageReferrerIsUnknown(t *testing.T) {
	got := Classify("https://menshealthfinder.com/", "not a url at all")
	assert.Equal(t, SourceUnknown, got)
}

func TestValid(t *testing.T) {
	for _, s := range []Source{SourcePaid, SourceSocial, SourceEmail, SourceReferral, SourceOrganic, SourceDirect, SourceUnknown} {
		assert.True(t, Valid(s))
	}
	assert.False(t, Valid(Source("banner")))
}
