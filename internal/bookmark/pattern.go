package bookmark

import (
	"strings"

	"pagepouch/internal/search"
)

// condition is one SQL predicate fragment with its bind arguments.
// Strategy selection reduces to building a list of these and combining
// them with the query's logic.
type condition struct {
	expr string
	args []any
}

// Pattern returns the ILIKE pattern for a term. Words are wrapped as-is,
// so % and _ typed in a bare word expand as wildcards. Phrases are
// escaped first: inside quotes those characters match literally.
func Pattern(t search.Term) string {
	if t.Kind == search.TermPhrase {
		return "%" + escapeLike(t.Text) + "%"
	}
	return "%" + t.Text + "%"
}

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const tagMatchSubquery = `exists (
select 1 from bookmark_tags bt
join tags t on t.id = bt.tag_id
where bt.bookmark_id = bookmarks.id and t.name ilike ?)`

// termCondition matches a bookmark when the term's pattern hits its
// title, description or URL, or the name of any associated tag.
func termCondition(t search.Term) condition {
	p := Pattern(t)
	return condition{
		expr: `(bookmarks.title ilike ? or bookmarks.description ilike ? or bookmarks.url ilike ? or ` + tagMatchSubquery + `)`,
		args: []any{p, p, p, p},
	}
}

// tagFilterCondition requires at least one associated tag whose name
// contains the filter string, case-insensitively.
func tagFilterCondition(filter string) condition {
	return condition{
		expr: tagMatchSubquery,
		args: []any{"%" + filter + "%"},
	}
}

// combine joins predicates with AND or OR. Works for any count, so a
// five-term OR is a true five-way disjunction rather than a joined
// single-pattern search.
func combine(conds []condition, logic search.Logic) condition {
	if len(conds) == 1 {
		return conds[0]
	}
	connective := " or "
	if logic == search.LogicAnd {
		connective = " and "
	}
	exprs := make([]string, 0, len(conds))
	var args []any
	for _, c := range conds {
		exprs = append(exprs, c.expr)
		args = append(args, c.args...)
	}
	return condition{expr: "(" + strings.Join(exprs, connective) + ")", args: args}
}
