package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	qtx "github.com/qbixus/qtx-xa"
)

// Scenario describes a scripted transaction: the participants, how each of them behaves and how the
// transaction is completed.
type Scenario struct {
	FormatID         int32          `yaml:"format_id"`
	Action           string         `yaml:"action"`
	RollbackOnly     bool           `yaml:"rollback_only"`
	Resources        []ResourceSpec `yaml:"resources"`
	Synchronizations []SyncSpec     `yaml:"synchronizations"`
}

// ResourceSpec scripts one resource manager. Fail maps a step (start, end, prepare, commit, rollback) to a
// failure code (see failureCodes).
type ResourceSpec struct {
	Name string            `yaml:"name"`
	RM   string            `yaml:"rm"`
	Vote string            `yaml:"vote"`
	Fail map[string]string `yaml:"fail"`
}

type SyncSpec struct {
	Name       string `yaml:"name"`
	FailBefore bool   `yaml:"fail_before"`
	FailAfter  bool   `yaml:"fail_after"`
}

// Result is what a scenario run reports.
type Result struct {
	XID    string   `yaml:"xid"`
	Status string   `yaml:"status"`
	Error  string   `yaml:"error,omitempty"`
	Trace  []string `yaml:"trace"`
}

var failureCodes = map[string]qtx.XACode{
	"rollback": qtx.XARBRollback,
	"deadlock": qtx.XARBDeadlock,
	"timeout":  qtx.XARBTimeout,
	"heurrb":   qtx.XAHeurRB,
	"heurcom":  qtx.XAHeurCom,
	"heurmix":  qtx.XAHeurMix,
	"heurhaz":  qtx.XAHeurHaz,
	"nota":     qtx.XAErNOTA,
	"rmerr":    qtx.XAErRMErr,
	"rmfail":   qtx.XAErRMFail,
	"proto":    qtx.XAErProto,
}

var steps = []string{"start", "end", "prepare", "commit", "rollback"}

// LoadScenario decodes and validates a YAML scenario.
func LoadScenario(r io.Reader) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

func (sc *Scenario) Validate() error {
	switch sc.Action {
	case "":
		sc.Action = "commit"
	case "commit", "rollback":
	default:
		return fmt.Errorf("scenario: unknown action %q", sc.Action)
	}
	for i := range sc.Resources {
		rs := &sc.Resources[i]
		if rs.Name == "" {
			return fmt.Errorf("scenario: resource %d has no name", i)
		}
		if rs.RM == "" {
			rs.RM = rs.Name
		}
		switch rs.Vote {
		case "":
			rs.Vote = "prepared"
		case "prepared", "read_only":
		default:
			return fmt.Errorf("scenario: resource %s: unknown vote %q", rs.Name, rs.Vote)
		}
		for step, code := range rs.Fail {
			if !containsStep(step) {
				return fmt.Errorf("scenario: resource %s: unknown step %q", rs.Name, step)
			}
			if _, ok := failureCodes[code]; !ok && code != "error" {
				return fmt.Errorf("scenario: resource %s: unknown failure %q", rs.Name, code)
			}
		}
	}
	for i, ss := range sc.Synchronizations {
		if ss.Name == "" {
			return fmt.Errorf("scenario: synchronization %d has no name", i)
		}
	}
	return nil
}

func containsStep(step string) bool {
	for _, s := range steps {
		if s == step {
			return true
		}
	}
	return false
}

// Run executes the scenario against a fresh transaction.
func Run(ctx context.Context, sc Scenario, opts ...qtx.TxOption) (Result, error) {
	if err := sc.Validate(); err != nil {
		return Result{}, err
	}
	if sc.FormatID != 0 {
		opts = append([]qtx.TxOption{qtx.WithFormatID(sc.FormatID)}, opts...)
	}
	tx := qtx.NewCommittableTransaction(opts...)
	tr := &trace{}

	for _, ss := range sc.Synchronizations {
		if err := tx.RegisterSynchronization(&scriptedSync{spec: ss, trace: tr}); err != nil {
			tr.add("register %s: %v", ss.Name, err)
		}
	}
	for _, rs := range sc.Resources {
		if err := tx.EnlistResource(ctx, &scriptedResource{spec: rs, trace: tr}); err != nil {
			tr.add("enlist %s: %v", rs.Name, err)
		}
	}
	if sc.RollbackOnly {
		if err := tx.SetRollbackOnly(); err != nil {
			tr.add("set_rollback_only: %v", err)
		}
	}

	var err error
	if sc.Action == "rollback" {
		err = tx.Rollback(ctx)
	} else {
		err = tx.Commit(ctx)
	}
	res := Result{XID: tx.XID().String(), Status: tx.Status().String(), Trace: tr.lines()}
	if err != nil {
		res.Error = err.Error()
	}
	return res, nil
}

type trace struct {
	mu    sync.Mutex
	calls []string
}

func (t *trace) add(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, fmt.Sprintf(format, args...))
}

func (t *trace) lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.calls...)
}

type scriptedResource struct {
	spec  ResourceSpec
	trace *trace
}

func (r *scriptedResource) String() string {
	return r.spec.Name
}

func (r *scriptedResource) IsSameRM(other qtx.RMIdentifier) (bool, error) {
	o, ok := other.(*scriptedResource)
	if !ok {
		return false, nil
	}
	return o.spec.RM == r.spec.RM, nil
}

func (r *scriptedResource) step(name string) error {
	r.trace.add("%s.%s", r.spec.Name, name)
	code, ok := r.spec.Fail[name]
	if !ok {
		return nil
	}
	if xa, ok := failureCodes[code]; ok {
		return qtx.NewXAError(xa, fmt.Errorf("%s %s scripted failure", r.spec.Name, name))
	}
	return errors.New(r.spec.Name + " " + name + " scripted failure")
}

func (r *scriptedResource) Start(_ context.Context, _ qtx.XID, _ qtx.Flags) error {
	return r.step("start")
}

func (r *scriptedResource) End(_ context.Context, _ qtx.XID, _ qtx.Flags) error {
	return r.step("end")
}

func (r *scriptedResource) Prepare(_ context.Context, _ qtx.XID) (qtx.Vote, error) {
	if err := r.step("prepare"); err != nil {
		return qtx.VoteUnset, err
	}
	if strings.EqualFold(r.spec.Vote, "read_only") {
		return qtx.VoteReadOnly, nil
	}
	return qtx.VotePrepared, nil
}

func (r *scriptedResource) Commit(_ context.Context, _ qtx.XID, _ bool) error {
	return r.step("commit")
}

func (r *scriptedResource) Rollback(_ context.Context, _ qtx.XID) error {
	return r.step("rollback")
}

type scriptedSync struct {
	spec  SyncSpec
	trace *trace
}

func (s *scriptedSync) BeforeCompletion(context.Context) error {
	s.trace.add("%s.before_completion", s.spec.Name)
	if s.spec.FailBefore {
		return errors.New(s.spec.Name + " before_completion scripted failure")
	}
	return nil
}

func (s *scriptedSync) AfterCompletion(_ context.Context, status qtx.Status) error {
	s.trace.add("%s.after_completion(%s)", s.spec.Name, status)
	if s.spec.FailAfter {
		return errors.New(s.spec.Name + " after_completion scripted failure")
	}
	return nil
}
