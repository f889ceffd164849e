package format

import (
	"strings"
	"testing"
	"time"

	"github.com/loglayer-go/loglayer/core"
)

func TestCountPlaceholders(t *testing.T) {
	tests := []struct {
		msg  string
		want int
	}{
		{"", 0},
		{"no markers here", 0},
		{"%@", 1},
		{"%d and %s", 2},
		{"100% done", 1}, // a bare percent still counts
		{"%%", 2},        // so do doubled ones
	}

	for _, tt := range tests {
		if got := CountPlaceholders(tt.msg); got != tt.want {
			t.Errorf("CountPlaceholders(%q) = %d, want %d", tt.msg, got, tt.want)
		}
	}
}

func TestClassify_DropsEmptyLists(t *testing.T) {
	args := []core.Value{
		core.String("a"),
		core.List(),
		core.Int(2),
		core.List(),
	}

	got := Classify(args)
	want := []string{"a", "2"}
	if len(got) != len(want) {
		t.Fatalf("Classify() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classify()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClassify_KeepsNonEmptyLists(t *testing.T) {
	got := Classify([]core.Value{core.List(core.String("x"), core.String("y"))})
	if len(got) != 1 || got[0] != "[x, y]" {
		t.Errorf("Classify() = %v, want [\"[x, y]\"]", got)
	}
}

func TestBody_NoPlaceholdersNoArgs(t *testing.T) {
	msgs := []string{"", "Main Message", "plain text with spaces", "7"}
	for _, msg := range msgs {
		if got := Body(msg, nil); got != msg {
			t.Errorf("Body(%q, nil) = %q, want the message unchanged", msg, got)
		}
	}
}

func TestBody_OnlyEmptyListsLeaveNoTrace(t *testing.T) {
	got := Body("Main Message", []core.Value{core.List(), core.List(), core.List()})
	if got != "Main Message" {
		t.Errorf("Body() = %q, want %q", got, "Main Message")
	}
	if strings.Contains(got, "Extra Args") {
		t.Errorf("empty lists must not produce an Extra Args suffix, got %q", got)
	}
}

func TestBody_SingleSubstitution(t *testing.T) {
	got := Body("%@", []core.Value{core.String("4")})
	if got != "4" {
		t.Errorf("Body(%%@, [4]) = %q, want %q", got, "4")
	}
}

func TestBody_AllArgsOverflowToSuffix(t *testing.T) {
	got := Body("Main Message", []core.Value{core.String("Hello"), core.String("World!")})
	want := "Main Message [Extra Args: Hello, World!]"
	if got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}

func TestBody_NumericExtras(t *testing.T) {
	got := Body("7", []core.Value{core.Int(0), core.Int(0)})
	want := "7 [Extra Args: 0, 0]"
	if got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}

func TestBody_MixedSubstitutionAndExtras(t *testing.T) {
	got := Body("%d items", []core.Value{core.Int(3), core.String("retrying")})
	want := "3 items [Extra Args: retrying]"
	if got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}

func TestBody_UnderfilledMarkersStayLiteral(t *testing.T) {
	got := Body("%@ and %@", []core.Value{core.String("a")})
	want := "a and %@"
	if got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}

func TestBody_BarePercentConsumesAnArg(t *testing.T) {
	// Raw-count semantics: the percent sign in "100%" is a marker, so
	// it eats the argument instead of sending it to the suffix.
	got := Body("100% done", []core.Value{core.String("x")})
	want := "100x done"
	if got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}

func TestBody_DoubledPercentIsTwoMarkers(t *testing.T) {
	got := Body("%%", []core.Value{core.String("a"), core.String("b"), core.String("c")})
	want := "ab [Extra Args: c]"
	if got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}

// Every valid argument must appear in the body, either substituted or
// suffixed: substituted + suffixed == len(validArgs).
func TestBody_NoArgIsEverDropped(t *testing.T) {
	cases := []struct {
		msg  string
		args []core.Value
	}{
		{"%@ %@", []core.Value{core.String("p"), core.String("q"), core.String("r")}},
		{"no markers", []core.Value{core.String("p"), core.List(), core.String("q")}},
		{"%d", []core.Value{core.Int(1), core.Int(2), core.Int(3), core.Int(4)}},
		{"%s tail %s", []core.Value{core.String("only")}},
	}

	for _, c := range cases {
		body := Body(c.msg, c.args)
		for _, v := range Classify(c.args) {
			if !strings.Contains(body, v) {
				t.Errorf("Body(%q) = %q dropped valid arg %q", c.msg, body, v)
			}
		}
	}
}

func TestBody_Idempotent(t *testing.T) {
	args := []core.Value{core.String("a"), core.Int(9), core.List(core.Bool(true))}
	first := Body("%@ of %d", args)
	second := Body("%@ of %d", args)
	if first != second {
		t.Errorf("Body() not stable: %q then %q", first, second)
	}
}

func TestRender_Envelope(t *testing.T) {
	rec := &core.Record{
		Time:     time.Date(2026, 2, 18, 13, 5, 9, 42_000_000, time.UTC),
		Level:    core.InfoLevel,
		Message:  "ready",
		Site:     core.CallSite{ShortFile: "server.go", Line: 42, Function: "app.Start", Defined: true},
		ThreadID: 7,
	}

	got := Render(rec)
	want := "[18-02-26 13:05:09.042] [Thread 7] ready | server.go app.Start line: 42"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_ExtraArgsSitBeforeSiteSegment(t *testing.T) {
	rec := &core.Record{
		Time:     time.Date(2026, 2, 18, 13, 5, 9, 0, time.UTC),
		Message:  "Main Message",
		Args:     []core.Value{core.String("Hello"), core.String("World!")},
		Site:     core.CallSite{ShortFile: "main.go", Line: 3, Function: "main.main", Defined: true},
		ThreadID: 1,
	}

	got := Render(rec)
	if !strings.Contains(got, "Main Message [Extra Args: Hello, World!] | main.go") {
		t.Errorf("suffix must come before the call-site segment, got %q", got)
	}
}

func TestRender_EmptyMessageMarker(t *testing.T) {
	rec := &core.Record{
		Time:     time.Date(2026, 2, 18, 13, 5, 9, 0, time.UTC),
		Site:     core.CallSite{ShortFile: "main.go", Line: 10, Function: "main.main", Defined: true},
		ThreadID: 1,
	}

	got := Render(rec)
	want := "[18-02-26 13:05:09.000] [Thread 1]  | main.go main.main line: 10"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
