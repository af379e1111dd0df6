package usecases

import (
	"testing"

	"vaultdedup/internal/core/domain"
	"vaultdedup/internal/testutil"
)

func TestEnrichFillsURIFromName(t *testing.T) {
	svc := NewEnrichService("Personal")

	tests := []struct {
		name        string
		displayName string
		expectedURI string
	}{
		{"domain name", "example.com", "https://example.com"},
		{"subdomain", "login.example.com", "https://login.example.com"},
		{"ip address", "192.168.1.1", "https://192.168.1.1"},
		{"ipv6 address", "2001:db8::1", "https://2001:db8::1"},
		{"name with scheme", "https://example.com/login", "https://example.com/login"},
		{"http scheme", "http://example.com", "http://example.com"},
		{"padded domain", "  example.com  ", "https://example.com"},
		{"plain name", "My Bank Account", ""},
		{"empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewRecord(testutil.LoginFields(tt.displayName, "", "user", "pw", "", "", "Work"))
			got := svc.Enrich(r)
			testutil.AssertEqual(t, got.URI(), tt.expectedURI, "enriched uri")
		})
	}
}

func TestEnrichKeepsExistingURI(t *testing.T) {
	svc := NewEnrichService("Personal")

	r := domain.NewRecord(testutil.LoginFields("example.com", "https://other.com", "", "", "", "", "Work"))
	got := svc.Enrich(r)

	testutil.AssertEqual(t, got.URI(), "https://other.com", "existing uri untouched")
}

func TestEnrichDefaultsFolder(t *testing.T) {
	svc := NewEnrichService("Personal")

	r := domain.NewRecord(testutil.LoginFields("Bank", "https://bank.com", "", "", "", "", ""))
	got := svc.Enrich(r)
	testutil.AssertEqual(t, got.Folder(), "Personal", "defaulted folder")

	withFolder := domain.NewRecord(testutil.LoginFields("Bank", "https://bank.com", "", "", "", "", "Finance"))
	got = svc.Enrich(withFolder)
	testutil.AssertEqual(t, got.Folder(), "Finance", "non-empty folder untouched")
}

func TestEnrichDoesNotMutateInput(t *testing.T) {
	svc := NewEnrichService("Personal")

	r := domain.NewRecord(testutil.LoginFields("example.com", "", "", "", "", "", ""))
	_ = svc.Enrich(r)

	testutil.AssertEqual(t, r.URI(), "", "input record uri")
	testutil.AssertEqual(t, r.Folder(), "", "input record folder")
}

func TestEnrichIsIdempotent(t *testing.T) {
	svc := NewEnrichService("Personal")

	r := domain.NewRecord(testutil.LoginFields("example.com", "", "user", "pw", "", "", ""))
	once := svc.Enrich(r)
	twice := svc.Enrich(once)

	testutil.AssertTrue(t, once.Equal(twice), "second application should be a no-op")
}

func TestEnrichAllCounts(t *testing.T) {
	svc := NewEnrichService("Personal")

	records := []domain.Record{
		domain.NewRecord(testutil.LoginFields("example.com", "", "", "", "", "", "")),            // uri + folder
		domain.NewRecord(testutil.LoginFields("Bank", "https://bank.com", "", "", "", "", "")),   // folder only
		domain.NewRecord(testutil.LoginFields("Other", "https://o.com", "", "", "", "", "Work")), // nothing
	}

	out, uriFixed, folderDefaulted := svc.EnrichAll(records)

	testutil.AssertEqual(t, len(out), 3, "output length")
	testutil.AssertEqual(t, uriFixed, 1, "uri fixes")
	testutil.AssertEqual(t, folderDefaulted, 2, "folder defaults")
}
