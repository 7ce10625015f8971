// Package ipapi provides a client for the ip-api.com geo-location web
// service. It resolves single IPs or domains through the json endpoint and
// arbitrarily large query sets through the batch endpoint, tracking the
// service's rate-limit response headers so keyless clients stay inside the
// published quotas. The client is safe for concurrent use; callers that
// create a client should release it with Close, typically via defer.
package ipapi

import "slices"

// Response headers carrying the rate-limit window state. Present on 200 and
// 429 responses for both endpoint classes.
const (
	headerRemaining = "X-Rl"
	headerReset     = "X-Ttl"
)

// ServiceFields are always requested regardless of the caller's selection, so
// failed lookups stay diagnosable and every result stays correlatable with
// its query.
var ServiceFields = []string{"status", "message", "query"}

// KnownFields lists the selectable response fields documented by the service.
// The selection is advisory: unknown names are warned about and still sent.
var KnownFields = []string{
	"continent",
	"continentCode",
	"country",
	"countryCode",
	"region",
	"regionName",
	"city",
	"district",
	"zip",
	"lat",
	"lon",
	"timezone",
	"offset",
	"currency",
	"isp",
	"org",
	"as",
	"asname",
	"reverse",
	"mobile",
	"proxy",
	"hosting",
}

// KnownLangs lists the response languages documented by the service.
var KnownLangs = []string{"en", "de", "es", "pt-BR", "fr", "ja", "zh-CN", "ru"}

// KnownField reports whether name is a documented selectable or service field.
func KnownField(name string) bool {
	return slices.Contains(KnownFields, name) || slices.Contains(ServiceFields, name)
}

// KnownLang reports whether code is a documented response language.
func KnownLang(code string) bool {
	return slices.Contains(KnownLangs, code)
}
