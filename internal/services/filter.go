package services

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// nameContains is the WHERE clause for a case-insensitive substring match on name
const nameContains = `LOWER(name) LIKE ? ESCAPE '\'`

// containsPattern returns the LIKE pattern matching s literally anywhere in a value
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
