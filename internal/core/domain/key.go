package domain

import "fmt"

// GroupKey is the composite equality key that decides which credential
// records are candidate duplicates of each other. It is a pure function
// of record content; two records with equal keys belong to one group.
// Being a comparable struct, it works directly as a map key with
// field-wise equality.
type GroupKey struct {
	Name     string
	Domain   string // resolved domain, raw address fallback, or ""
	Username string
	Password string
	HasTOTP  bool
	HasNotes bool
}

// NewGroupKey derives the key for a record given its resolved domain.
// The domain argument follows the grouping fallback: the normalizer's
// result when one was found, the raw address when normalization yielded
// nothing for a non-empty address, "" otherwise.
func NewGroupKey(r Record, domain string) GroupKey {
	return GroupKey{
		Name:     r.Name(),
		Domain:   domain,
		Username: r.Username(),
		Password: r.Password(),
		HasTOTP:  r.HasTOTP(),
		HasNotes: r.HasNotes(),
	}
}

// String returns a readable form for group headers in the console report.
// The secret is never included.
func (k GroupKey) String() string {
	domain := k.Domain
	if domain == "" {
		domain = "(empty)"
	}
	username := k.Username
	if username == "" {
		username = "(empty)"
	}
	return fmt.Sprintf("Name: %s | Domain: %s | Username: %s", k.Name, domain, username)
}

// Group is a non-empty ordered sequence of credential records sharing one
// GroupKey. Record order inside a group is input order, which the
// selector's tie-breaks depend on.
type Group struct {
	Key     GroupKey
	Records []Record
}

// Size returns the number of records in the group.
func (g Group) Size() int { return len(g.Records) }

// IsSingleton reports whether the group has no duplicates.
func (g Group) IsSingleton() bool { return len(g.Records) == 1 }

// CountURI returns how many members have a non-empty address.
func (g Group) CountURI() int {
	n := 0
	for _, r := range g.Records {
		if r.HasURI() {
			n++
		}
	}
	return n
}

// CountTOTP returns how many members carry a one-time-password secret.
func (g Group) CountTOTP() int {
	n := 0
	for _, r := range g.Records {
		if r.HasTOTP() {
			n++
		}
	}
	return n
}

// CountNotes returns how many members have non-empty notes.
func (g Group) CountNotes() int {
	n := 0
	for _, r := range g.Records {
		if r.HasNotes() {
			n++
		}
	}
	return n
}
