package qtx

import "go.uber.org/multierr"

// outcomeKind - сводный исход второй фазы.
type outcomeKind int

const (
	outcomeNone outcomeKind = iota
	outcomeOK
	outcomeHeuristicRollback
	outcomeHeuristicMixed
	outcomeError
)

func (k outcomeKind) String() string {
	switch k {
	case outcomeNone:
		return "none"
	case outcomeOK:
		return "ok"
	case outcomeHeuristicRollback:
		return "heuristic_rollback"
	case outcomeHeuristicMixed:
		return "heuristic_mixed"
	case outcomeError:
		return "error"
	}
	return "invalid"
}

// outcome накапливает результаты commit/rollback участников второй фазы и ошибки участников для диагностики.
type outcome struct {
	commit bool
	kind   outcomeKind
	errs   []error
}

func newOutcome(commit bool) *outcome {
	return &outcome{commit: commit}
}

func (o *outcome) add(err error) {
	if err == nil {
		o.success()
		return
	}
	o.errs = append(o.errs, err)
	switch {
	case isHeuristicCoded(err):
		o.heuristic()
	case isNoTransaction(err):
		if o.commit {
			o.heuristic()
		} else {
			// Участник уже забыл транзакцию - откат фактически выполнен.
			if o.kind == outcomeNone {
				o.kind = outcomeOK
			}
		}
	default:
		o.kind = outcomeError
	}
}

func (o *outcome) success() {
	switch o.kind {
	case outcomeNone:
		o.kind = outcomeOK
	case outcomeHeuristicRollback:
		o.kind = outcomeHeuristicMixed
	}
}

func (o *outcome) heuristic() {
	switch o.kind {
	case outcomeNone:
		o.kind = outcomeHeuristicRollback
	case outcomeOK:
		o.kind = outcomeHeuristicMixed
	}
}

// resolve возвращает окончательный статус и, для эвристических исходов, ошибку.
func (o *outcome) resolve(xid XID) (Status, error) {
	switch o.kind {
	case outcomeError, outcomeHeuristicMixed:
		return StatusUnknown, txError(KindHeuristicMixed, o.op(), xid, o.cause())
	case outcomeHeuristicRollback:
		return StatusUnknown, txError(KindHeuristicRollback, o.op(), xid, o.cause())
	}
	if o.commit {
		return StatusCommitted, nil
	}
	return StatusRolledBack, nil
}

func (o *outcome) cause() error {
	return multierr.Combine(o.errs...)
}

func (o *outcome) op() string {
	if o.commit {
		return "commit"
	}
	return "rollback"
}
