package validation

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// EscapeHTML replaces the characters that can open markup or attributes.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// subaddress separators of providers that route "local+tag" to "local"
var subaddressSeparators = map[string]string{
	"gmail.com":      "+",
	"outlook.com":    "+",
	"hotmail.com":    "+",
	"live.com":       "+",
	"icloud.com":     "+",
	"me.com":         "+",
	"mac.com":        "+",
	"yahoo.com":      "-",
	"ymail.com":      "-",
	"rocketmail.com": "-",
}

// NormalizeEmail lower-cases an address and canonicalizes provider aliases:
// googlemail.com becomes gmail.com, gmail ignores dots in the local part, and
// known providers drop their subaddress suffix.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return strings.ToLower(email)
	}
	local := strings.ToLower(email[:at])
	domain := strings.ToLower(email[at+1:])

	if domain == "googlemail.com" {
		domain = "gmail.com"
	}
	if sep, ok := subaddressSeparators[domain]; ok {
		if i := strings.Index(local, sep); i > 0 {
			local = local[:i]
		}
	}
	if domain == "gmail.com" {
		local = strings.ReplaceAll(local, ".", "")
	}

	return local + "@" + domain
}
