package testutil

// Fixture data for tests (primitive values only, no domain dependencies).

// FixtureHeader is a typical vault export header, in export column order.
var FixtureHeader = []string{
	"folder", "favorite", "type", "name", "notes",
	"fields", "reprompt", "login_uri", "login_username",
	"login_password", "login_totp",
}

// LoginFields builds the field map of a credential row.
func LoginFields(name, uri, username, password, totp, notes, folder string) map[string]string {
	return map[string]string{
		"type":           "login",
		"name":           name,
		"login_uri":      uri,
		"login_username": username,
		"login_password": password,
		"login_totp":     totp,
		"notes":          notes,
		"folder":         folder,
	}
}

// NoteFields builds the field map of a secure-note row, which the engine
// must pass through untouched.
func NoteFields(name, notes string) map[string]string {
	return map[string]string{
		"type":  "note",
		"name":  name,
		"notes": notes,
	}
}

// FixtureBareDomains are inputs the normalizer should return unchanged.
var FixtureBareDomains = []string{
	"example.com",
	"login.example.com",
	"my-bank.example.co.uk",
}

// FixtureIPs are IP literals the normalizer must never rewrite.
var FixtureIPs = []string{
	"192.168.1.1",
	"10.0.0.1",
	"2001:db8::1",
	"::1",
}
