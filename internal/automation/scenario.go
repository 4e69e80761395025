// Package automation replays scripted sessions: a scenario is a YAML list
// of the same commands the keyboard issues, with optional expectations on
// the resulting state.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/san-kum/sortwiz/internal/seq"
	"github.com/san-kum/sortwiz/internal/session"
	"github.com/san-kum/sortwiz/internal/stepper"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted session.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Count       int      `yaml:"count"`
	Min         int64    `yaml:"min"`
	Max         int64    `yaml:"max"`
	Seed        int64    `yaml:"seed"`
	Actions     []Action `yaml:"actions"`
}

// Action is a single session command.
type Action struct {
	// Do is one of start, pause, resume, toggle, cancel, reset, advance,
	// run, algorithm, direction.
	Do string `yaml:"do"`
	// Arg names the algorithm or direction.
	Arg string `yaml:"arg,omitempty"`
	// Steps bounds advance; run ignores it.
	Steps int `yaml:"steps,omitempty"`
	// Expect is the state the session must be in afterwards.
	Expect string `yaml:"expect,omitempty"`
	// Rejected marks an action the session must refuse.
	Rejected bool `yaml:"rejected,omitempty"`
}

// Outcome records what one action did.
type Outcome struct {
	Index  int
	Action Action
	State  stepper.State
	Steps  int
	Err    error
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if len(sc.Actions) == 0 {
		return nil, fmt.Errorf("scenario %q has no actions", sc.Name)
	}
	return &sc, nil
}

// NewSession builds the session a scenario runs against, filling unset
// fields from opts.
func (sc *Scenario) NewSession(opts session.Options) (*session.Session, error) {
	if sc.Count != 0 {
		opts.Count = sc.Count
	}
	if sc.Min != 0 || sc.Max != 0 {
		opts.Min, opts.Max = sc.Min, sc.Max
	}
	return session.New(opts, seq.New(sc.Seed))
}

// RunScenario executes every action against sess. It stops at the first
// action whose result contradicts its expectations and returns the outcomes
// so far.
func RunScenario(ctx context.Context, sc *Scenario, sess *session.Session) ([]Outcome, error) {
	log := slog.Default().With("component", "automation", "scenario", sc.Name)
	outcomes := make([]Outcome, 0, len(sc.Actions))

	for i, a := range sc.Actions {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		err := apply(ctx, sess, a)
		o := Outcome{Index: i + 1, Action: a, State: sess.State(), Steps: sess.Steps(), Err: err}
		outcomes = append(outcomes, o)
		log.Debug("action applied", "index", o.Index, "do", a.Do, "state", o.State, "steps", o.Steps, "error", err)

		switch {
		case a.Rejected && err == nil:
			return outcomes, fmt.Errorf("action %d (%s): expected rejection, got none", o.Index, a.Do)
		case !a.Rejected && err != nil:
			return outcomes, fmt.Errorf("action %d (%s): %w", o.Index, a.Do, err)
		}
		if a.Expect != "" && !strings.EqualFold(a.Expect, o.State.String()) {
			return outcomes, fmt.Errorf("action %d (%s): expected state %s, got %s", o.Index, a.Do, a.Expect, o.State)
		}
	}
	return outcomes, nil
}

func apply(ctx context.Context, sess *session.Session, a Action) error {
	switch strings.ToLower(a.Do) {
	case "start":
		return sess.Start()
	case "pause":
		return sess.Pause()
	case "resume":
		return sess.Resume()
	case "toggle":
		return sess.Toggle()
	case "cancel":
		sess.Cancel()
		return nil
	case "reset":
		return sess.Reset()
	case "advance":
		for range max(a.Steps, 1) {
			r, err := sess.Advance()
			if err != nil {
				return err
			}
			if r.Finished {
				break
			}
		}
		return nil
	case "run":
		for sess.State() == stepper.Running {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := sess.Advance(); err != nil {
				return err
			}
		}
		return nil
	case "algorithm":
		algo, err := stepper.ParseAlgorithm(a.Arg)
		if err != nil {
			return err
		}
		return sess.SetAlgorithm(algo)
	case "direction":
		dir, err := stepper.ParseDirection(a.Arg)
		if err != nil {
			return err
		}
		return sess.SetDirection(dir)
	default:
		return fmt.Errorf("unknown action %q", a.Do)
	}
}
