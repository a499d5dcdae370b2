package taskextract

import "regexp"

// actionPattern pairs a recognizer with the default priority of the
// candidates it produces. Capture group 1 is the candidate text.
type actionPattern struct {
	re       *regexp.Regexp
	priority Priority
}

// actionPatterns is evaluated in order against each clause, and a clause
// may match several entries. The table is deliberately redundant — many
// overlapping verb groups maximize recall on loosely structured spoken
// input — and deduplication downstream absorbs the over-generation.
// Keep it a flat ordered table so tie-break behavior stays auditable.
var actionPatterns = []actionPattern{
	// Obligation phrases: the candidate is the remainder after the modal.
	{re: regexp.MustCompile(`(?i)\b(?:should|needs? to|have to|has to|must|remember to|gotta|don't forget to)\s+(.+)$`), priority: PriorityMed},

	// Verb groups: the candidate keeps the verb.
	{re: regexp.MustCompile(`(?i)\b((?:buy|purchase|get|pick up|grab|order)\s+.+)$`), priority: PriorityLow},
	{re: regexp.MustCompile(`(?i)\b((?:call|phone|text|email|message)\s+.+)$`), priority: PriorityMed},
	{re: regexp.MustCompile(`(?i)\b((?:schedule|book|arrange|plan|organi[sz]e)\s+.+)$`), priority: PriorityMed},
	{re: regexp.MustCompile(`(?i)\b((?:finish|complete|wrap up|finali[sz]e)\s+.+)$`), priority: PriorityHigh},
	{re: regexp.MustCompile(`(?i)\b((?:submit|send|deliver|share)\s+.+)$`), priority: PriorityHigh},
	{re: regexp.MustCompile(`(?i)\b((?:pay|renew|update|fix|repair)\s+.+)$`), priority: PriorityHigh},
	{re: regexp.MustCompile(`(?i)\b((?:clean|wash|tidy|vacuum|fold)\s+.+)$`), priority: PriorityLow},
	{re: regexp.MustCompile(`(?i)\b((?:review|check|read|study)\s+.+)$`), priority: PriorityMed},
	{re: regexp.MustCompile(`(?i)\b((?:write|draft|prepare|practice)\s+.+)$`), priority: PriorityMed},
}

// listItemRE recognizes a leading list marker: -, •, *, or a numeric
// bullet. The remainder becomes an additional candidate.
var listItemRE = regexp.MustCompile(`^\s*(?:[-•*]|\d+[.)])\s*(.+)$`)
