// Package attribution classifies pageview and lead events into traffic-source
// categories from UTM parameters and the document referrer.
package attribution

import (
	"net/url"
	"strings"
)

// Source is a traffic-source classification.
type Source string

const (
	SourcePaid     Source = "paid"
	SourceSocial   Source = "social"
	SourceEmail    Source = "email"
	SourceReferral Source = "referral"
	SourceOrganic  Source = "organic"
	SourceDirect   Source = "direct"
	SourceUnknown  Source = "unknown"
)

// searchEngineDomains are referrer hosts classified as organic search.
var searchEngineDomains = []string{
	"google.", "bing.com", "yahoo.", "duckduckgo.com", "baidu.com", "yandex.",
}

// socialDomains are hosts classified as social traffic, both as utm_source
// values and as referrers.
var socialDomains = []string{
	"facebook.com", "fb.com", "instagram.com", "twitter.com", "x.com",
	"linkedin.com", "t.co", "tiktok.com", "youtube.com", "reddit.com",
	"pinterest.com",
}

// paidMediums are utm_medium values that indicate paid advertising.
var paidMediums = map[string]bool{
	"cpc": true, "ppc": true, "paid": true, "paidsearch": true, "display": true,
}

// Classify derives a traffic source from a page URL and referrer.
//
// UTM parameters take precedence in a fixed order: paid, social, email,
// referral. Without UTM parameters the referrer decides: search engine means
// organic, social domain means social, any other external domain means
// referral, an empty referrer means direct. Classify always returns one of
// the Source constants and never fails; unparseable input degrades to the
// referrer heuristics or unknown.
func Classify(pageURL, referrer string) Source {
	if src := classifyUTM(pageURL); src != "" {
		return src
	}
	return classifyReferrer(pageURL, referrer)
}

func classifyUTM(pageURL string) Source {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	utmSource := strings.ToLower(q.Get("utm_source"))
	utmMedium := strings.ToLower(q.Get("utm_medium"))
	if utmSource == "" && utmMedium == "" {
		return ""
	}

	if paidMediums[utmMedium] {
		return SourcePaid
	}
	for _, d := range socialDomains {
		if utmSource == strings.TrimSuffix(d, ".com") || strings.Contains(utmSource, strings.TrimSuffix(d, ".com")) {
			return SourceSocial
		}
	}
	if utmMedium == "email" || utmSource == "email" || utmSource == "newsletter" {
		return SourceEmail
	}
	if utmMedium == "referral" {
		return SourceReferral
	}
	// UTM present but unrecognized: fall back to campaign traffic as referral.
	return SourceReferral
}

func classifyReferrer(pageURL, referrer string) Source {
	if strings.TrimSpace(referrer) == "" {
		return SourceDirect
	}
	ref, err := url.Parse(referrer)
	if err != nil || ref.Host == "" {
		return SourceUnknown
	}
	refHost := strings.ToLower(strings.TrimPrefix(ref.Host, "www."))

	for _, d := range searchEngineDomains {
		if strings.Contains(refHost, d) {
			return SourceOrganic
		}
	}
	for _, d := range socialDomains {
		if refHost == d || strings.HasSuffix(refHost, "."+d) {
			return SourceSocial
		}
	}

	// Same-site navigation is direct; anything external is a referral.
	if page, err := url.Parse(pageURL); err == nil && page.Host != "" {
		pageHost := strings.ToLower(strings.TrimPrefix(page.Host, "www."))
		if pageHost == refHost {
			return SourceDirect
		}
	}
	return SourceReferral
}

// Valid reports whether s is one of the known source values.
func Valid(s Source) bool {
	switch s {
	case SourcePaid, SourceSocial, SourceEmail, SourceReferral,
		SourceOrganic, SourceDirect, SourceUnknown:
		return true
	}
	return false
}
