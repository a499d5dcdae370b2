package taskextract

import (
	"regexp"
	"strings"
	"time"

	"mindgarden-backend/pkg/datemath"
)

var (
	sentenceSplitRE = regexp.MustCompile(`[.!?]+`)
	clauseSplitRE   = regexp.MustCompile(`(?i)\s+(?:and then|and|then)\s+|\s*;\s*`)
	hashtagRE       = regexp.MustCompile(`#(\w+)`)
	priorityTokenRE = regexp.MustCompile(`(?i)\b[p][0-3]\b`)
	normalizeRE     = regexp.MustCompile(`[^a-z0-9]+`)
)

// Extractor derives structured tasks from cleaned text. Extraction is
// deterministic: the same input, reference time and timezone always
// produce the same tasks. Safe for concurrent use.
type Extractor struct{}

// New builds an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans cleaned text for actionable phrases and returns them as
// tasks in order of appearance, duplicates removed. Due dates are
// resolved against now using the given parser; priority markers in the
// surrounding clause override each pattern's default. A nil result
// means no tasks were found.
func (e *Extractor) Extract(cleaned string, dates *datemath.Parser, now time.Time) []Task {
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil
	}

	var tasks []Task
	seen := make(map[string]struct{})

	for _, sentence := range sentenceSplitRE.Split(cleaned, -1) {
		for _, clause := range clauseSplitRE.Split(sentence, -1) {
			clause = strings.TrimSpace(clause)
			if clause == "" {
				continue
			}

			for _, cand := range findCandidates(clause) {
				task, ok := buildTask(cand, clause, dates, now)
				if !ok {
					continue
				}
				key := normalizeTitle(task.Title)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				tasks = append(tasks, task)
			}
		}
	}

	return tasks
}

// findCandidates runs the pattern tables over a single clause.
func findCandidates(clause string) []candidate {
	var out []candidate
	for _, p := range actionPatterns {
		if m := p.re.FindStringSubmatch(clause); m != nil {
			out = append(out, candidate{raw: m[1], priority: p.priority})
		}
	}
	if m := listItemRE.FindStringSubmatch(clause); m != nil {
		out = append(out, candidate{raw: m[1], priority: PriorityMed})
	}
	return out
}

// buildTask derives a Task from a raw candidate: hashtags become tags
// and are stripped from the title, the due date and priority markers
// resolve against the whole clause the candidate came from.
func buildTask(cand candidate, clause string, dates *datemath.Parser, now time.Time) (Task, bool) {
	raw := strings.TrimSpace(cand.raw)
	if len(raw) < 3 {
		return Task{}, false
	}

	var tags []string
	tagSeen := make(map[string]struct{})
	for _, m := range hashtagRE.FindAllStringSubmatch(raw, -1) {
		tag := strings.ToLower(m[1])
		if _, dup := tagSeen[tag]; dup {
			continue
		}
		tagSeen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	title := hashtagRE.ReplaceAllString(raw, "")
	title = priorityTokenRE.ReplaceAllString(title, "")
	title = strings.Join(strings.Fields(title), " ")
	title = strings.Trim(title, " .,;:")
	if len(title) < 3 {
		return Task{}, false
	}

	task := Task{
		Title:    title,
		Tags:     tags,
		Priority: cand.priority,
	}

	if due, ok := dates.ParseDue(clause, now); ok {
		task.Due = due
	}
	if p, ok := markerPriority(clause); ok {
		task.Priority = p
	}

	return task, true
}

// normalizeTitle reduces a title to its deduplication key: lowercase,
// punctuation folded to spaces, whitespace collapsed.
func normalizeTitle(title string) string {
	s := strings.ToLower(title)
	s = normalizeRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
