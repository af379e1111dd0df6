package csvio

import (
	"bytes"
	"strings"
	"testing"

	"vaultdedup/internal/core/domain"
	"vaultdedup/internal/platform/logx"
	"vaultdedup/internal/testutil"
)

func TestWriteKeptThenPassthrough(t *testing.T) {
	w := NewWriter(logx.NewSilent())

	kept := []domain.Record{
		domain.NewRecord(testutil.LoginFields("Bank", "https://bank.com", "alice", "pw", "", "", "Finance")),
	}
	passthrough := []domain.Record{
		domain.NewRecord(testutil.NoteFields("Recovery codes", "1234 5678")),
	}

	var buf bytes.Buffer
	err := w.Write(&buf, testutil.FixtureHeader, kept, passthrough)
	testutil.AssertNoError(t, err, "write export")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 3, "header plus two rows")
	testutil.AssertEqual(t, lines[0], strings.Join(testutil.FixtureHeader, ","), "header order preserved")
	testutil.AssertContains(t, lines[1], "Bank", "kept row first")
	testutil.AssertContains(t, lines[2], "Recovery codes", "passthrough row last")
}

func TestWriteReadRoundTrip(t *testing.T) {
	w := NewWriter(logx.NewSilent())

	// Notes with commas and quotes must survive the round trip.
	rec := domain.NewRecord(testutil.LoginFields(
		"Bank", "https://bank.com", "alice", "pw", "otp",
		"line one, \"quoted\"\nline two", "Finance"))

	var buf bytes.Buffer
	err := w.Write(&buf, testutil.FixtureHeader, []domain.Record{rec}, nil)
	testutil.AssertNoError(t, err, "write export")

	parsed, err := newTestReader().Read(&buf)
	testutil.AssertNoError(t, err, "re-read export")
	testutil.AssertEqual(t, len(parsed.Logins), 1, "one credential row")
	testutil.AssertEqual(t, parsed.Logins[0].Notes(), "line one, \"quoted\"\nline two", "notes intact")
	testutil.AssertEqual(t, parsed.Logins[0].TOTP(), "otp", "secret intact")
}

func TestWriteFillsColumnsTheRecordLacks(t *testing.T) {
	w := NewWriter(logx.NewSilent())

	rec := domain.NewRecord(testutil.NoteFields("Sparse", "n"))

	var buf bytes.Buffer
	err := w.Write(&buf, testutil.FixtureHeader, nil, []domain.Record{rec})
	testutil.AssertNoError(t, err, "write export")

	parsed, err := newTestReader().Read(&buf)
	testutil.AssertNoError(t, err, "re-read export")
	testutil.AssertEqual(t, parsed.Passthrough[0].Get("login_password"), "", "absent column written empty")
}
