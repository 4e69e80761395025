package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/sortwiz/internal/experiment"
	"github.com/san-kum/sortwiz/internal/stepper"
)

type TraceStep struct {
	Step      int    `json:"step"`
	Op        string `json:"op"`
	Primary   *int   `json:"primary,omitempty"`
	Secondary *int   `json:"secondary,omitempty"`
}

type TraceData struct {
	Algorithm  string             `json:"algorithm"`
	Direction  string             `json:"direction"`
	Seed       int64              `json:"seed"`
	Count      int                `json:"count"`
	Steps      int                `json:"steps"`
	Finished   bool               `json:"finished"`
	Initial    []int64            `json:"initial"`
	Final      []int64            `json:"final"`
	Events     []TraceStep        `json:"events"`
	Inversions []float64          `json:"inversions"`
	Metrics    map[string]float64 `json:"metrics"`
}

func traceStep(ev stepper.StepEvent) TraceStep {
	ts := TraceStep{Step: ev.Step, Op: ev.Op.String()}
	if i := ev.Index(stepper.Primary); i >= 0 {
		ts.Primary = &i
	}
	if i := ev.Index(stepper.Secondary); i >= 0 {
		ts.Secondary = &i
	}
	return ts
}

func NewTraceData(result *experiment.Result) TraceData {
	data := TraceData{
		Algorithm:  result.Algorithm.Key(),
		Direction:  result.Direction.String(),
		Seed:       result.Seed,
		Count:      len(result.Initial),
		Steps:      result.Steps,
		Finished:   result.Finished,
		Initial:    result.Initial,
		Final:      result.Final,
		Events:     make([]TraceStep, len(result.Events)),
		Inversions: result.Inversions,
		Metrics:    result.Metrics,
	}
	for i, ev := range result.Events {
		data.Events[i] = traceStep(ev)
	}
	return data
}

func WriteJSON(w io.Writer, result *experiment.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewTraceData(result))
}

// WriteCSV writes one row per step: step, op, primary, secondary and the
// inversion count after the step. Missing highlights are left empty.
func WriteCSV(w io.Writer, result *experiment.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "op", "primary", "secondary", "inversions"}); err != nil {
		return err
	}

	for i, ev := range result.Events {
		row := []string{strconv.Itoa(ev.Step), ev.Op.String(), index(ev, stepper.Primary), index(ev, stepper.Secondary), ""}
		if i+1 < len(result.Inversions) {
			row[4] = strconv.FormatFloat(result.Inversions[i+1], 'f', 0, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func index(ev stepper.StepEvent, r stepper.Role) string {
	if i := ev.Index(r); i >= 0 {
		return strconv.Itoa(i)
	}
	return ""
}
