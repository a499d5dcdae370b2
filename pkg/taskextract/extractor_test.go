package taskextract_test

import (
	"strings"
	"testing"
	"time"

	"mindgarden-backend/pkg/datemath"
	"mindgarden-backend/pkg/taskextract"
)

// Monday, so weekday math in due-date assertions is stable.
var testNow = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

func newTestExtractor(t *testing.T) (*taskextract.Extractor, *datemath.Parser) {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return taskextract.New(), parser
}

func TestExtractDeduplication(t *testing.T) {
	e, parser := newTestExtractor(t)

	tasks := e.Extract("I need to call the doctor. Should call the doctor.", parser, testNow)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d: %+v", len(tasks), tasks)
	}
	if !strings.Contains(tasks[0].Title, "call the doctor") {
		t.Errorf("unexpected title %q", tasks[0].Title)
	}
}

func TestExtractHashtags(t *testing.T) {
	e, parser := newTestExtractor(t)

	tasks := e.Extract("Need to buy groceries #shopping #urgent", parser, testNow)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d: %+v", len(tasks), tasks)
	}
	got := tasks[0]
	if got.Title != "buy groceries" {
		t.Errorf("title = %q, want %q", got.Title, "buy groceries")
	}
	if len(got.Tags) != 2 || got.Tags[0] != "shopping" || got.Tags[1] != "urgent" {
		t.Errorf("tags = %v, want [shopping urgent]", got.Tags)
	}
	// "urgent" doubles as a priority marker even inside a hashtag.
	if got.Priority != taskextract.PriorityHigh {
		t.Errorf("priority = %q, want high", got.Priority)
	}
}

func TestExtractPriorityMarkers(t *testing.T) {
	e, parser := newTestExtractor(t)

	tasks := e.Extract("Need to call doctor p0 and buy milk p3.", parser, testNow)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d: %+v", len(tasks), tasks)
	}
	if tasks[0].Title != "call doctor" || tasks[0].Priority != taskextract.PriorityHigh {
		t.Errorf("task 0 = %+v, want title %q priority high", tasks[0], "call doctor")
	}
	if tasks[1].Title != "buy milk" || tasks[1].Priority != taskextract.PriorityLow {
		t.Errorf("task 1 = %+v, want title %q priority low", tasks[1], "buy milk")
	}
}

func TestExtractNoActionVerbs(t *testing.T) {
	e, parser := newTestExtractor(t)

	tasks := e.Extract("The weather was lovely today. Blue skies everywhere.", parser, testNow)
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %+v", tasks)
	}
}

func TestExtractListItems(t *testing.T) {
	e, parser := newTestExtractor(t)

	tasks := e.Extract("- stretch for five minutes", parser, testNow)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d: %+v", len(tasks), tasks)
	}
	if tasks[0].Title != "stretch for five minutes" || tasks[0].Priority != taskextract.PriorityMed {
		t.Errorf("unexpected task %+v", tasks[0])
	}

	// Too short to be a meaningful task.
	if got := e.Extract("- ok", parser, testNow); len(got) != 0 {
		t.Errorf("expected short list item discarded, got %+v", got)
	}
}

func TestExtractDueDates(t *testing.T) {
	e, parser := newTestExtractor(t)

	tasks := e.Extract("Submit the report tomorrow and pay rent by friday.", parser, testNow)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d: %+v", len(tasks), tasks)
	}
	if tasks[0].Due != "2024-01-16" {
		t.Errorf("task 0 due = %q, want 2024-01-16", tasks[0].Due)
	}
	if tasks[1].Due != "2024-01-19" {
		t.Errorf("task 1 due = %q, want 2024-01-19", tasks[1].Due)
	}
	for _, task := range tasks {
		if task.Priority != taskextract.PriorityHigh {
			t.Errorf("task %q priority = %q, want high", task.Title, task.Priority)
		}
	}
}

func TestExtractEndToEndScenario(t *testing.T) {
	e, parser := newTestExtractor(t)

	cleaned := "I need to call the doctor tomorrow and buy groceries today #shopping."
	tasks := e.Extract(cleaned, parser, testNow)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d: %+v", len(tasks), tasks)
	}

	first, second := tasks[0], tasks[1]
	if !strings.Contains(first.Title, "call the doctor") || first.Due != "2024-01-16" {
		t.Errorf("task 0 = %+v, want call-the-doctor task due 2024-01-16", first)
	}
	if !strings.Contains(second.Title, "buy groceries") || second.Due != "2024-01-15" {
		t.Errorf("task 1 = %+v, want buy-groceries task due 2024-01-15", second)
	}
	if len(second.Tags) != 1 || second.Tags[0] != "shopping" {
		t.Errorf("task 1 tags = %v, want [shopping]", second.Tags)
	}
}

func TestExtractMultipleClauses(t *testing.T) {
	e, parser := newTestExtractor(t)

	tasks := e.Extract("Email the landlord and pay rent.", parser, testNow)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d: %+v", len(tasks), tasks)
	}
	if tasks[0].Priority != taskextract.PriorityMed {
		t.Errorf("email task priority = %q, want med", tasks[0].Priority)
	}
	if tasks[1].Priority != taskextract.PriorityHigh {
		t.Errorf("pay task priority = %q, want high", tasks[1].Priority)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e, parser := newTestExtractor(t)

	for _, in := range []string{"", "   ", "\n\t", "..."} {
		if got := e.Extract(in, parser, testNow); len(got) != 0 {
			t.Errorf("Extract(%q) = %+v, want none", in, got)
		}
	}
}

func TestExtractNeverPanics(t *testing.T) {
	e, parser := newTestExtractor(t)

	inputs := []string{
		"🎉 buy 🎉 balloons 🎉",
		strings.Repeat("buy milk and ", 5000),
		"#### #tag buy #a#b#c things",
		"- \n- \n- buy",
		"call; email; submit; pay;",
	}
	for _, in := range inputs {
		_ = e.Extract(in, parser, testNow)
	}
}
