package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/sortwiz/internal/experiment"
	"github.com/san-kum/sortwiz/internal/layout"
	"github.com/san-kum/sortwiz/internal/stepper"
)

func runTrace(t *testing.T) *experiment.Result {
	t.Helper()
	exp := experiment.New(experiment.Config{Algorithm: stepper.BubbleSort, KeepEvents: true})
	exp.UseSequence(stepper.Sequence{5, 3, 4, 1, 2})
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result
}

func TestWriteSVG(t *testing.T) {
	values := stepper.Sequence{3, 5, 4, 1, 2}
	l, err := layout.New(1200, 1000, values)
	if err != nil {
		t.Fatal(err)
	}
	ev := stepper.StepEvent{Op: stepper.OpSwap, Highlights: []stepper.Highlight{
		{Index: 0, Role: stepper.Primary},
		{Index: 1, Role: stepper.Secondary},
	}}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, l, values, ev, "Bubble Sort - Ascending <test>"); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output is not a complete svg document")
	}
	// the minimum value has zero height and is skipped
	if got := strings.Count(out, "<rect x="); got != 4 {
		t.Errorf("expected 4 bars, got %d", got)
	}
	if !strings.Contains(out, `fill="#008000"`) || !strings.Contains(out, `fill="#ff0000"`) {
		t.Error("expected both accent colours")
	}
	if !strings.Contains(out, "&lt;test&gt;") {
		t.Error("title was not escaped")
	}
}

func TestWriteSVG_NilLayout(t *testing.T) {
	if err := WriteSVG(&bytes.Buffer{}, nil, nil, stepper.StepEvent{}, ""); err == nil {
		t.Error("expected error for nil layout")
	}
}

func TestWriteJSON(t *testing.T) {
	result := runTrace(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, result); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var data TraceData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Algorithm != "bubble" || data.Direction != "Ascending" {
		t.Errorf("unexpected header %s %s", data.Algorithm, data.Direction)
	}
	if len(data.Events) != data.Steps || data.Steps == 0 {
		t.Errorf("expected %d events, got %d", data.Steps, len(data.Events))
	}
	first := data.Events[0]
	if first.Primary == nil || *first.Primary != 0 || first.Secondary == nil || *first.Secondary != 1 {
		t.Errorf("unexpected first event %+v", first)
	}
	if data.Final[0] != 1 || data.Final[4] != 5 {
		t.Errorf("unexpected final order %v", data.Final)
	}
}

func TestWriteCSV(t *testing.T) {
	result := runTrace(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, result); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != result.Steps+1 {
		t.Fatalf("expected %d rows, got %d", result.Steps+1, len(records))
	}
	if records[0][0] != "step" {
		t.Errorf("missing header: %v", records[0])
	}
	if last := records[len(records)-1]; last[4] != "0" {
		t.Errorf("expected zero inversions on the last row, got %v", last)
	}
}
