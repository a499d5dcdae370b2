package taskextract

import "regexp"

// priorityMarker maps an explicit or contextual priority expression to a
// priority level. Evaluated in order against the clause the candidate
// came from; the first match overrides the pattern's default.
type priorityMarker struct {
	re       *regexp.Regexp
	priority Priority
}

var priorityMarkers = []priorityMarker{
	{re: regexp.MustCompile(`(?i)\b(?:p0|urgent|asap|critical)\b`), priority: PriorityHigh},
	{re: regexp.MustCompile(`(?i)\b(?:p1|important|priority)\b`), priority: PriorityHigh},
	{re: regexp.MustCompile(`(?i)\b(?:p2|medium|normal)\b`), priority: PriorityMed},
	{re: regexp.MustCompile(`(?i)\b(?:p3|low|minor)\b`), priority: PriorityLow},

	// Contextual cues, weaker than the explicit markers above.
	{re: regexp.MustCompile(`(?i)\b(?:deadline|must|by end of day|eod)\b`), priority: PriorityHigh},
	{re: regexp.MustCompile(`(?i)\b(?:should|needs?)\b`), priority: PriorityMed},
	{re: regexp.MustCompile(`(?i)\b(?:maybe|someday|eventually|whenever)\b`), priority: PriorityLow},
}

// markerPriority returns the priority of the first marker found in the
// clause, if any.
func markerPriority(clause string) (Priority, bool) {
	for _, m := range priorityMarkers {
		if m.re.MatchString(clause) {
			return m.priority, true
		}
	}
	return "", false
}
