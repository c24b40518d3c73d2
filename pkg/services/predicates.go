package services

import (
	"entgo.io/ent/dialect/sql"
	"github.com/punchd-io/punchd/ent/predicate"
	"github.com/punchd-io/punchd/ent/punch"
)

// likeKey matches punch_key against a SQL LIKE pattern. Card patterns use the
// % wildcard directly, so this drops to the dialect/sql escape hatch rather
// than the generated prefix/suffix predicates.
func likeKey(pattern string) predicate.Punch {
	return predicate.Punch(func(s *sql.Selector) {
		s.Where(sql.Like(s.C(punch.FieldPunchKey), pattern))
	})
}
