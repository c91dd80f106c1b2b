package mathspan

// closingDelims maps each opening delimiter to its required closing
// delimiter. Entries beyond the bracket pairs and the GitLab code-span
// pairs are reserved for delimiter styles no matching rule produces yet;
// they are kept in the table but never consulted.
var closingDelims = map[string]string{
	`\(`:   `\)`,
	`\[`:   `\]`,
	"$`":   "`$",
	"$``":  "``$",
	"$":    "$",
	"$$":   "$$",
	`\f$`:  `$\f`,
	`\f[`:  `]\f`,
}

// closingDelim returns the closing token for an opening delimiter.
// The scanners are the only callers, so an unregistered opening is a
// programmer error, not user input: it panics instead of returning an error.
func closingDelim(opening string) string {
	closing, ok := closingDelims[opening]
	if !ok {
		panic("mathspan: unregistered opening delimiter " + opening)
	}
	return closing
}
