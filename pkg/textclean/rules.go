package textclean

// Correction tables are configuration data, not control flow: ordered
// pattern/replacement pairs applied in list order. Extend via the YAML
// overlay file (cleaner.rules_path) rather than editing code.

// fillerPatterns remove discourse fillers and false starts from speech
// transcripts. Each match is replaced with a single space.
var fillerPatterns = []string{
	`(?i)\b(?:um+|uh+|erm+|hmm+)\b`,
	`(?i)\byou know\b`,
	`(?i)\bi mean\b`,
	`(?i)\blet me (?:see|think)\b`,
	`(?i)\blet me\b`,
	`(?i)\blike\b`,
	`(?i)\bkind of\b`,
	`(?i)\bsort of\b`,
	`(?i)\bbasically\b`,
	`(?i)\bactually\b`,
	`(?i)\bliterally\b`,
	`(?i)\bokay so\b`,
	`(?i)\bso yeah\b`,
	`(?i)\bwait no\b`,
	`(?i)\bor whatever\b`,
}

// neutralLanguageRules replace shame and pressure words with neutral
// equivalents. The app serves neurodivergent users; this framing is a
// product decision, not transcription repair.
var neutralLanguageRules = []Rule{
	{Pattern: `(?i)\boverdue\b`, Replacement: "pending"},
	{Pattern: `(?i)\bfailed to\b`, Replacement: "haven't"},
	{Pattern: `(?i)\bmust\b`, Replacement: "should"},
	{Pattern: `(?i)\bdeadline\b`, Replacement: "target date"},
	{Pattern: `(?i)\burgent\b`, Replacement: "priority"},
	{Pattern: `(?i)\blate\b`, Replacement: "pending"},
	{Pattern: `(?i)\bbehind on\b`, Replacement: "catching up on"},
	{Pattern: `(?i)\bwasted\b`, Replacement: "spent"},
	{Pattern: `(?i)\bprocrastinating on\b`, Replacement: "easing into"},
}

// transcriptionFixRules repair recurring speech-to-text mishearings.
// Tuned empirically against real user transcripts; inherently open-ended.
var transcriptionFixRules = []Rule{
	{Pattern: `(?i)\bto do\b`, Replacement: "todo"},
	{Pattern: `(?i)\bshould of\b`, Replacement: "should have"},
	{Pattern: `(?i)\bwould of\b`, Replacement: "would have"},
	{Pattern: `(?i)\bcould of\b`, Replacement: "could have"},
	{Pattern: `(?i)\bcan walk project\b`, Replacement: "Canva project"},
	{Pattern: `(?i)\bpomma doro\b`, Replacement: "pomodoro"},
	{Pattern: `(?i)\bpomo door o\b`, Replacement: "pomodoro"},
	{Pattern: `(?i)\bcore memory's\b`, Replacement: "core memories"},
	{Pattern: `(?i)\bbreath work\b`, Replacement: "breathwork"},
	{Pattern: `(?i)\bmood cracker\b`, Replacement: "mood tracker"},
	{Pattern: `(?i)\bmedia tation\b`, Replacement: "meditation"},
	{Pattern: `(?i)\bspot if i\b`, Replacement: "Spotify"},
	{Pattern: `(?i)\bfig ma\b`, Replacement: "Figma"},
	{Pattern: `(?i)\bi owe us\b`, Replacement: "iOS"},
	{Pattern: `(?i)\band droid\b`, Replacement: "Android"},
}

// DefaultRules returns the built-in correction tables in application
// order: neutral-language substitutions first, then transcription fixes.
func DefaultRules() []Rule {
	rules := make([]Rule, 0, len(neutralLanguageRules)+len(transcriptionFixRules))
	rules = append(rules, neutralLanguageRules...)
	rules = append(rules, transcriptionFixRules...)
	return rules
}
