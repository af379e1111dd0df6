package usecases

import (
	"vaultdedup/internal/core/domain"
	"vaultdedup/internal/platform/logx"
	"vaultdedup/internal/platform/urlnorm"
)

// GroupService partitions credential records into duplicate groups by
// their composite grouping key.
type GroupService struct {
	norm   *urlnorm.Normalizer
	logger logx.Logger
}

// NewGroupService creates the grouping engine.
func NewGroupService(norm *urlnorm.Normalizer, logger logx.Logger) *GroupService {
	return &GroupService{
		norm:   norm,
		logger: logger.With("component", "grouping"),
	}
}

// Grouping is the partition of a record set: groups in first-seen key
// order, plus the warnings raised while resolving domains.
type Grouping struct {
	Groups   []domain.Group
	Warnings []domain.Warning
}

// Singletons returns the groups with no duplicates, preserving order.
func (g *Grouping) Singletons() []domain.Group {
	out := make([]domain.Group, 0, len(g.Groups))
	for _, grp := range g.Groups {
		if grp.IsSingleton() {
			out = append(out, grp)
		}
	}
	return out
}

// Duplicates returns the groups of size >= 2, preserving order.
func (g *Grouping) Duplicates() []domain.Group {
	out := make([]domain.Group, 0)
	for _, grp := range g.Groups {
		if !grp.IsSingleton() {
			out = append(out, grp)
		}
	}
	return out
}

// KeyFor computes the grouping key of one record. When the address does
// not resolve to a domain but is non-empty, the raw address string keeps
// records on different unparsable addresses apart.
func (s *GroupService) KeyFor(r domain.Record) (domain.GroupKey, error) {
	uri := r.URI()

	resolved, err := s.norm.ExtractDomain(uri)
	if resolved == "" && uri != "" {
		resolved = uri
	}

	return domain.NewGroupKey(r, resolved), err
}

// Group partitions records by key equality. Group order is the order each
// key was first seen; record order inside a group is input order. The key
// is a pure function of record content, so the partition never depends on
// anything but the input sequence itself.
func (s *GroupService) Group(records []domain.Record) *Grouping {
	grouping := &Grouping{}
	index := make(map[domain.GroupKey]int, len(records))

	for _, r := range records {
		key, err := s.KeyFor(r)
		if err != nil {
			grouping.Warnings = append(grouping.Warnings, domain.Warning{
				Stage:   "grouping",
				Message: err.Error(),
			})
		}

		if i, seen := index[key]; seen {
			grouping.Groups[i].Records = append(grouping.Groups[i].Records, r)
			continue
		}
		index[key] = len(grouping.Groups)
		grouping.Groups = append(grouping.Groups, domain.Group{
			Key:     key,
			Records: []domain.Record{r},
		})
	}

	s.logger.Debug("partitioned records",
		"records", len(records),
		"groups", len(grouping.Groups),
		"warnings", len(grouping.Warnings),
	)

	return grouping
}
