package qtx

import (
	"errors"
	"fmt"
)

// XACode - код ошибки участника в терминах X/Open XA.
type XACode int

const (
	XARBBase      XACode = 100
	XARBRollback  XACode = XARBBase
	XARBCommFail  XACode = XARBBase + 1
	XARBDeadlock  XACode = XARBBase + 2
	XARBIntegrity XACode = XARBBase + 3
	XARBOther     XACode = XARBBase + 4
	XARBProto     XACode = XARBBase + 5
	XARBTimeout   XACode = XARBBase + 6
	XARBTransient XACode = XARBBase + 7
	XARBEnd       XACode = XARBTransient

	XANoMigrate XACode = 9
	XAHeurHaz   XACode = 8
	XAHeurCom   XACode = 7
	XAHeurRB    XACode = 6
	XAHeurMix   XACode = 5
	XARetry     XACode = 4
	XARDOnly    XACode = 3
	XAOK        XACode = 0

	XAErAsync   XACode = -2
	XAErRMErr   XACode = -3
	XAErNOTA    XACode = -4
	XAErInval   XACode = -5
	XAErProto   XACode = -6
	XAErRMFail  XACode = -7
	XAErDupID   XACode = -8
	XAErOutside XACode = -9
)

// IsRollback сообщает, относится ли код к диапазону XA_RB*.
func (c XACode) IsRollback() bool {
	return c >= XARBBase && c <= XARBEnd
}

// IsHeuristic сообщает, является ли код эвристическим XA_HEUR*.
func (c XACode) IsHeuristic() bool {
	switch c {
	case XAHeurHaz, XAHeurCom, XAHeurRB, XAHeurMix:
		return true
	}
	return false
}

func (c XACode) String() string {
	switch {
	case c.IsRollback():
		return fmt.Sprintf("XA_RB(%d)", int(c))
	case c == XAHeurHaz:
		return "XA_HEURHAZ"
	case c == XAHeurCom:
		return "XA_HEURCOM"
	case c == XAHeurRB:
		return "XA_HEURRB"
	case c == XAHeurMix:
		return "XA_HEURMIX"
	case c == XARetry:
		return "XA_RETRY"
	case c == XARDOnly:
		return "XA_RDONLY"
	case c == XAOK:
		return "XA_OK"
	case c == XAErAsync:
		return "XAER_ASYNC"
	case c == XAErRMErr:
		return "XAER_RMERR"
	case c == XAErNOTA:
		return "XAER_NOTA"
	case c == XAErInval:
		return "XAER_INVAL"
	case c == XAErProto:
		return "XAER_PROTO"
	case c == XAErRMFail:
		return "XAER_RMFAIL"
	case c == XAErDupID:
		return "XAER_DUPID"
	case c == XAErOutside:
		return "XAER_OUTSIDE"
	}
	return fmt.Sprintf("XA(%d)", int(c))
}

// XAError - ошибка, возвращаемая участником транзакции. Классификация исходов координатором производится по Code;
// ошибки других типов считаются неожиданными.
type XAError struct {
	Code XACode
	Err  error
}

// NewXAError возвращает *XAError с кодом code и причиной cause (может быть nil).
func NewXAError(code XACode, cause error) *XAError {
	return &XAError{Code: code, Err: cause}
}

func (e *XAError) Error() string {
	if e.Err == nil {
		return "xa: " + e.Code.String()
	}
	return "xa: " + e.Code.String() + ": " + e.Err.Error()
}

func (e *XAError) Unwrap() error {
	return e.Err
}

// XACodeOf извлекает код XA из цепочки err. Второе значение false, если в цепочке нет *XAError.
func XACodeOf(err error) (XACode, bool) {
	var xe *XAError
	if errors.As(err, &xe) {
		return xe.Code, true
	}
	return 0, false
}

func isRollbackCoded(err error) bool {
	code, ok := XACodeOf(err)
	return ok && code.IsRollback()
}

func isHeuristicCoded(err error) bool {
	code, ok := XACodeOf(err)
	return ok && code.IsHeuristic()
}

func isNoTransaction(err error) bool {
	code, ok := XACodeOf(err)
	return ok && code == XAErNOTA
}
