package csvio

import (
	"strings"
	"testing"

	"vaultdedup/internal/platform/errors"
	"vaultdedup/internal/platform/logx"
	"vaultdedup/internal/testutil"
)

const sampleExport = `folder,favorite,type,name,notes,fields,reprompt,login_uri,login_username,login_password,login_totp
Finance,,login,Bank,,,0,https://bank.com,alice,pw1,
,,login,Shop,,,0,,alice,pw2,otpauth
Personal,,note,Recovery codes,1234 5678,,0,,,,
`

func newTestReader() *Reader {
	return NewReader(logx.NewSilent())
}

func TestReadSplitsLoginsFromPassthrough(t *testing.T) {
	parsed, err := newTestReader().Read(strings.NewReader(sampleExport))
	testutil.AssertNoError(t, err, "read export")

	testutil.AssertEqual(t, len(parsed.Logins), 2, "credential rows")
	testutil.AssertEqual(t, len(parsed.Passthrough), 1, "passthrough rows")
	testutil.AssertEqual(t, parsed.TotalRecords(), 3, "total rows")
	testutil.AssertEqual(t, parsed.Logins[0].Name(), "Bank", "row order preserved")
	testutil.AssertEqual(t, parsed.Passthrough[0].Notes(), "1234 5678", "passthrough fields kept")
	testutil.AssertEqual(t, len(parsed.Header), len(testutil.FixtureHeader), "header captured")
}

func TestReadCountsEmptyFields(t *testing.T) {
	parsed, err := newTestReader().Read(strings.NewReader(sampleExport))
	testutil.AssertNoError(t, err, "read export")

	// Shop has no folder and no address; the note row does not count.
	testutil.AssertEqual(t, parsed.EmptyFolder, 1, "empty folder count")
	testutil.AssertEqual(t, parsed.EmptyURI, 1, "empty address count")
}

func TestReadPreservesExtraColumns(t *testing.T) {
	parsed, err := newTestReader().Read(strings.NewReader(sampleExport))
	testutil.AssertNoError(t, err, "read export")

	testutil.AssertEqual(t, parsed.Logins[0].Get("reprompt"), "0", "extra column value kept")
	testutil.AssertEqual(t, parsed.Logins[0].Folder(), "Finance", "named column kept")
}

func TestReadMissingColumnIsFatal(t *testing.T) {
	input := "folder,type,name\nPersonal,login,Bank\n"

	_, err := newTestReader().Read(strings.NewReader(input))
	testutil.AssertError(t, err, "missing columns")
	testutil.AssertTrue(t, errors.IsMissingColumn(err), "missing-column sentinel")
	testutil.AssertContains(t, err.Error(), "login_password", "names the missing column")
}

func TestReadEmptyInput(t *testing.T) {
	_, err := newTestReader().Read(strings.NewReader(""))
	testutil.AssertError(t, err, "no header")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrUnreadableInput), "unreadable sentinel")
}

func TestReadShortRowLeavesFieldsEmpty(t *testing.T) {
	input := "type,name,login_uri,login_username,login_password,login_totp,notes,folder\n" +
		"login,Bank\n"

	parsed, err := newTestReader().Read(strings.NewReader(input))
	testutil.AssertNoError(t, err, "read export")
	testutil.AssertEqual(t, len(parsed.Logins), 1, "row read")
	testutil.AssertEqual(t, parsed.Logins[0].Name(), "Bank", "present field")
	testutil.AssertEqual(t, parsed.Logins[0].Password(), "", "absent field reads empty")
}

func TestReadFileMissing(t *testing.T) {
	_, err := newTestReader().ReadFile("/nonexistent/export.csv")
	testutil.AssertError(t, err, "missing file")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrUnreadableInput), "unreadable sentinel")
}
