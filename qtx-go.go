package qtx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalState    = errors.New("#TX_ILLEGAL_STATE")
	ErrInvalidArgument = errors.New("#TX_INVALID_ARGUMENT")
	ErrSystem          = errors.New("#TX_SYSTEM_ERROR")
	ErrInterrupted     = errors.New("#TX_INTERRUPTED")

	ErrRolledBack   = errors.New("#TX_ROLLED_BACK")
	ErrRollbackOnly = fmt.Errorf("#TX_ROLLBACK_ONLY: %w", ErrRolledBack)

	ErrHeuristicRollback = errors.New("#TX_HEURISTIC_ROLLBACK")
	ErrHeuristicMixed    = errors.New("#TX_HEURISTIC_MIXED")

	ErrInvalidOperation = errors.New("#TX_INVALID_OPERATION")
)

// ErrorKind - класс ошибки [TxError].
type ErrorKind int

const (
	KindIllegalState ErrorKind = iota
	KindInvalidArgument
	KindSystem
	KindInterrupted
	KindRollback
	KindRollbackOnly
	KindHeuristicRollback
	KindHeuristicMixed
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindIllegalState:
		return ErrIllegalState
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindSystem:
		return ErrSystem
	case KindInterrupted:
		return ErrInterrupted
	case KindRollback:
		return ErrRolledBack
	case KindRollbackOnly:
		return ErrRollbackOnly
	case KindHeuristicRollback:
		return ErrHeuristicRollback
	case KindHeuristicMixed:
		return ErrHeuristicMixed
	}
	return ErrSystem
}

func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

// TxError - ошибка транзакции с классом Kind и цепочкой причин Err.
// Сопоставляется с соответствующей классу sentinel-ошибкой через errors.Is, например
// errors.Is(err, ErrHeuristicMixed).
type TxError struct {
	Kind ErrorKind
	Op   string
	XID  XID
	Err  error
}

func (e *TxError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Op != "" {
		b.WriteString(" ")
		b.WriteString(e.Op)
	}
	if !e.XID.IsZero() {
		b.WriteString(" xid=")
		b.WriteString(e.XID.String())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *TxError) Unwrap() error {
	return e.Err
}

func (e *TxError) Is(target error) bool {
	return errors.Is(e.Kind.sentinel(), target)
}

// IsHeuristic сообщает, является ли err эвристическим исходом транзакции. Такие исходы требуют вмешательства
// администратора и автоматически не разрешаются.
func IsHeuristic(err error) bool {
	return errors.Is(err, ErrHeuristicRollback) || errors.Is(err, ErrHeuristicMixed)
}

func txError(kind ErrorKind, op string, xid XID, cause error) *TxError {
	return &TxError{Kind: kind, Op: op, XID: xid, Err: cause}
}

type contextKey[T any] struct{}
