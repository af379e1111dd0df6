package domain

import "testing"

func TestNewGroupKey(t *testing.T) {
	r := NewRecord(map[string]string{
		ColName:     "Bank",
		ColURI:      "https://bank.example.com/login",
		ColUsername: "alice",
		ColPassword: "s3cret",
		ColTOTP:     "otpauth://totp/x",
		ColNotes:    "",
	})

	key := NewGroupKey(r, "bank.example.com")

	want := GroupKey{
		Name:     "Bank",
		Domain:   "bank.example.com",
		Username: "alice",
		Password: "s3cret",
		HasTOTP:  true,
		HasNotes: false,
	}
	if key != want {
		t.Errorf("key = %+v, want %+v", key, want)
	}
}

func TestGroupKeyEquality(t *testing.T) {
	a := NewRecord(map[string]string{
		ColName: "Bank", ColUsername: "alice", ColPassword: "pw", ColNotes: "foo",
	})
	b := NewRecord(map[string]string{
		ColName: "Bank", ColUsername: "alice", ColPassword: "pw", ColNotes: "longer notes text",
	})
	c := NewRecord(map[string]string{
		ColName: "Bank", ColUsername: "alice", ColPassword: "pw",
	})

	// notes content differs but presence matches: same key
	if NewGroupKey(a, "bank.com") != NewGroupKey(b, "bank.com") {
		t.Error("records differing only in notes content should share a key")
	}
	// presence differs: different key
	if NewGroupKey(a, "bank.com") == NewGroupKey(c, "bank.com") {
		t.Error("notes presence must be part of the key")
	}
	// domain differs: different key
	if NewGroupKey(a, "bank.com") == NewGroupKey(a, "other.com") {
		t.Error("domain must be part of the key")
	}
}

func TestGroupKeyUsableAsMapKey(t *testing.T) {
	m := map[GroupKey]int{}
	r := NewRecord(map[string]string{ColName: "Bank"})

	m[NewGroupKey(r, "bank.com")]++
	m[NewGroupKey(r, "bank.com")]++

	if m[NewGroupKey(r, "bank.com")] != 2 {
		t.Error("equal keys should hit the same map bucket")
	}
}

func TestGroupKeyStringMasksSecret(t *testing.T) {
	r := NewRecord(map[string]string{
		ColName: "Bank", ColUsername: "alice", ColPassword: "hunter2",
	})
	s := NewGroupKey(r, "bank.com").String()

	if s != "Name: Bank | Domain: bank.com | Username: alice" {
		t.Errorf("unexpected header: %q", s)
	}
}

func TestGroupKeyStringEmptyPlaceholders(t *testing.T) {
	r := NewRecord(map[string]string{ColName: "Bank"})
	s := NewGroupKey(r, "").String()

	if s != "Name: Bank | Domain: (empty) | Username: (empty)" {
		t.Errorf("unexpected header: %q", s)
	}
}

func TestGroupCounts(t *testing.T) {
	g := Group{
		Records: []Record{
			NewRecord(map[string]string{ColURI: "https://a.com", ColTOTP: "x"}),
			NewRecord(map[string]string{ColNotes: "n"}),
			NewRecord(map[string]string{ColURI: "https://b.com", ColNotes: "m"}),
		},
	}

	if g.Size() != 3 || g.IsSingleton() {
		t.Error("size/singleton wrong for 3-record group")
	}
	if g.CountURI() != 2 {
		t.Errorf("CountURI = %d, want 2", g.CountURI())
	}
	if g.CountTOTP() != 1 {
		t.Errorf("CountTOTP = %d, want 1", g.CountTOTP())
	}
	if g.CountNotes() != 2 {
		t.Errorf("CountNotes = %d, want 2", g.CountNotes())
	}
}
