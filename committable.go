package qtx

import (
	"context"
	"errors"
	"sync"

	"github.com/qbixus/qtx-xa/internal"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var errSetRollbackOnly = errors.New("transaction marked rollback-only by caller")

// CommittableTransaction - транзакция [Transaction], изменения в которой могут быть зафиксированы.
// Нулевое значение готово к использованию: идентификатор генерируется при первом обращении.
type CommittableTransaction struct {
	opts     txOptions
	initOnce sync.Once

	xid       XID
	logger    *zap.Logger
	converter ResourceConverter
	metrics   *txMetrics
	tracer    trace.Tracer

	mu    sync.Mutex
	state txState

	// Для исключения конкуренции присоединения участников с началом завершения, в дополнение к mu
	enlistMu sync.Mutex
}

// txState - изменяемое состояние транзакции. Читается и изменяется только под CommittableTransaction.mu.
type txState struct {
	status        Status
	completing    bool
	rollbackCause error
	reg           registry
	completion    *Future[Void]
}

// NewCommittableTransaction создает транзакцию в статусе StatusActive.
func NewCommittableTransaction(opts ...TxOption) *CommittableTransaction {
	tx := &CommittableTransaction{}
	for _, opt := range opts {
		opt(&tx.opts)
	}
	tx.init()
	return tx
}

func (tx *CommittableTransaction) init() {
	tx.initOnce.Do(func() {
		tx.opts.applyDefaults()
		tx.xid = tx.opts.xid
		tx.logger = tx.opts.logger.With(zap.Stringer("xid", tx.xid))
		tx.converter = tx.opts.converter
		tx.metrics = newTxMetrics(tx.opts.meterProvider, tx.logger)
		tx.tracer = tx.opts.tracerProvider.Tracer(instrumentationName)
	})
}

// XID реализует [Transaction.XID].
func (tx *CommittableTransaction) XID() XID {
	tx.init()
	return tx.xid
}

// Status реализует [Transaction.Status].
func (tx *CommittableTransaction) Status() Status {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return tx.state.status
}

// RollbackCause возвращает первую причину пометки транзакции к откату или nil.
func (tx *CommittableTransaction) RollbackCause() error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return tx.state.rollbackCause
}

// Completion возвращает Future завершения, если завершение (Commit или Rollback) уже начато, иначе nil.
func (tx *CommittableTransaction) Completion() *Future[Void] {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return tx.state.completion
}

// EnlistResource реализует [Transaction.EnlistResource].
// Вызывает Start участника с TMNoFlags и блокируется до его завершения. Участник добавляется в реестр только после
// успешного Start.
func (tx *CommittableTransaction) EnlistResource(ctx context.Context, res RMIdentifier) error {
	tx.init()
	p, err := resolveParticipant(res, tx.converter)
	if err != nil {
		return err
	}

	tx.enlistMu.Lock()
	defer tx.enlistMu.Unlock()

	tx.mu.Lock()
	if err := tx.checkMutable("enlist"); err != nil {
		tx.mu.Unlock()
		return err
	}
	existing := append([]*enlistedResource(nil), tx.state.reg.resources...)
	tx.mu.Unlock()

	dup, probeErrs := findSameRM(res, existing)
	for _, perr := range probeErrs {
		tx.logger.Debug("tx.enlist.probe.failed", zap.Error(perr))
	}
	if dup {
		tx.logger.Debug("tx.enlist.duplicate", zap.String("resource", participantName(res)))
		return nil
	}

	if _, err := await(p.async.StartAsync(context.WithoutCancel(ctx), tx.xid, TMNoFlags)); err != nil {
		tx.metrics.recordParticipantFailure(ctx, "start")
		if isRollbackCoded(err) {
			tx.logger.Warn("tx.enlist.start.rollback_vote", zap.Error(err))
			tx.markRollbackOnly(err)
			return txError(KindRollbackOnly, "enlist", tx.xid, err)
		}
		tx.logger.Error("tx.enlist.start.failed", zap.Error(err))
		return txError(KindSystem, "enlist", tx.xid, err)
	}

	tx.mu.Lock()
	defer tx.mu.Unlock()
	// ... т.к. tx.enlistMu исключает начало завершения во время Start
	internal.Assert(!tx.state.completing && !tx.state.status.IsTerminal(), "#enlist")
	tx.state.reg.addResource(p)
	tx.logger.Debug("tx.enlist.ok",
		zap.String("resource", participantName(res)),
		zap.Int("resources", len(tx.state.reg.resources)),
	)
	return nil
}

// RegisterSynchronization реализует [Transaction.RegisterSynchronization].
func (tx *CommittableTransaction) RegisterSynchronization(s Synchronization) error {
	tx.init()
	if s == nil {
		return txError(KindInvalidArgument, "register_synchronization", tx.xid, errors.New("nil synchronization"))
	}
	tx.mu.Lock()
	defer tx.mu.Unlock()

	if err := tx.checkMutable("register_synchronization"); err != nil {
		return err
	}
	tx.state.reg.addSynchronization(s)
	return nil
}

// SetRollbackOnly реализует [Transaction.SetRollbackOnly].
func (tx *CommittableTransaction) SetRollbackOnly() error {
	tx.init()
	tx.mu.Lock()
	defer tx.mu.Unlock()

	switch tx.state.status {
	case StatusActive, StatusMarkedRollback:
		tx.markRollbackOnlyLocked(errSetRollbackOnly)
		return nil
	}
	return txError(KindIllegalState, "set_rollback_only", tx.xid, statusError(tx.state.status))
}

// Commit фиксирует изменения в транзакции.
// Фиксация выполняется поэтапно: 1) уведомление синхронизаций BeforeCompletion и завершение ассоциаций (End);
// 2) фаза подготовки 2PC; 3) фаза фиксации или отмены 2PC; 4) уведомление синхронизаций AfterCompletion.
// Участники вызываются строго последовательно в порядке присоединения.
// Блокируется до завершения; если ctx отменяется раньше, возвращает ErrInterrupted, а завершение продолжается в
// фоне (см. [CommittableTransaction.Completion]).
//
// Возвращает nil если изменения зафиксированы, ErrRolledBack если транзакция была отменена вместо фиксации,
// ErrHeuristicRollback или ErrHeuristicMixed при эвристическом исходе и ErrIllegalState если транзакция уже
// завершена или завершается.
func (tx *CommittableTransaction) Commit(ctx context.Context) error {
	return tx.wait(ctx, "commit", tx.CommitAsync(ctx))
}

// CommitAsync - неблокирующий вариант [CommittableTransaction.Commit].
func (tx *CommittableTransaction) CommitAsync(ctx context.Context) *Future[Void] {
	return tx.complete(ctx, true)
}

// Rollback реализует [Transaction.Rollback].
func (tx *CommittableTransaction) Rollback(ctx context.Context) error {
	return tx.wait(ctx, "rollback", tx.RollbackAsync(ctx))
}

// RollbackAsync - неблокирующий вариант [CommittableTransaction.Rollback].
func (tx *CommittableTransaction) RollbackAsync(ctx context.Context) *Future[Void] {
	return tx.complete(ctx, false)
}

func (tx *CommittableTransaction) wait(ctx context.Context, op string, f *Future[Void]) error {
	select {
	case <-f.Done():
		_, err := f.Result()
		return err
	default:
	}
	select {
	case <-f.Done():
		_, err := f.Result()
		return err
	case <-ctx.Done():
		tx.logger.Warn("tx.wait.interrupted", zap.String("op", op), zap.Error(ctx.Err()))
		return txError(KindInterrupted, op, tx.xid, ctx.Err())
	}
}

func (tx *CommittableTransaction) complete(ctx context.Context, commit bool) *Future[Void] {
	tx.init()
	op := opName(commit)

	tx.enlistMu.Lock()
	tx.mu.Lock()

	// Проверяем текущее состояние
	if tx.state.completing || tx.state.status.IsTerminal() {
		status := tx.state.status
		tx.mu.Unlock()
		tx.enlistMu.Unlock()
		return Failed[Void](txError(KindIllegalState, op, tx.xid, statusError(status)))
	}

	// ... т.к. до начала завершения статус меняет только SetRollbackOnly
	internal.Assert(tx.state.status == StatusActive || tx.state.status == StatusMarkedRollback, "#complete")

	f, done := NewFuture[Void]()
	tx.state.completing = true
	tx.state.completion = f

	// ... и возможность быстрого завершения
	if tx.state.reg.isEmpty() {
		var err error
		status := StatusRolledBack
		switch {
		case commit && tx.state.status == StatusActive:
			status = StatusCommitted
		case commit:
			err = txError(KindRollback, op, tx.xid, tx.state.rollbackCause)
		}
		tx.state.status = status
		tx.mu.Unlock()
		tx.enlistMu.Unlock()

		tx.metrics.recordCompletion(ctx, op, status, 0)
		tx.logger.Debug("tx.complete.empty", zap.String("op", op), zap.Stringer("status", status))
		done(Void{}, err)
		return f
	}

	// Формируем рабочий набор данных - после начала завершения реестр не изменяется
	reg := tx.state.reg.snapshot()
	tx.mu.Unlock()
	tx.enlistMu.Unlock()

	go tx.run(context.WithoutCancel(ctx), commit, reg, done)
	return f
}

// checkMutable проверяет, допускает ли статус присоединение и регистрацию участников. Вызывается под tx.mu.
func (tx *CommittableTransaction) checkMutable(op string) error {
	st := tx.state.status
	if tx.state.completing || (st != StatusActive && st != StatusMarkedRollback) {
		return txError(KindIllegalState, op, tx.xid, statusError(st))
	}
	if st == StatusMarkedRollback {
		return txError(KindRollbackOnly, op, tx.xid, tx.state.rollbackCause)
	}
	return nil
}

// markRollbackOnly помечает транзакцию к откату изнутри завершения. Запоминается только первая причина.
func (tx *CommittableTransaction) markRollbackOnly(cause error) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.markRollbackOnlyLocked(cause)
}

func (tx *CommittableTransaction) markRollbackOnlyLocked(cause error) {
	switch tx.state.status {
	case StatusActive, StatusMarkedRollback, StatusPreparing, StatusPrepared:
		tx.state.status = StatusMarkedRollback
		if tx.state.rollbackCause == nil {
			tx.state.rollbackCause = cause
		}
	}
}

func (tx *CommittableTransaction) setStatus(status Status) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.state.status = status
}

// transition переводит транзакцию из статуса from в статус to. Возвращает false, если текущий статус не from.
func (tx *CommittableTransaction) transition(from, to Status) bool {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.state.status != from {
		return false
	}
	tx.state.status = to
	return true
}

func (tx *CommittableTransaction) clear() {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.state.reg.clear()
}

func opName(commit bool) string {
	if commit {
		return "commit"
	}
	return "rollback"
}

type statusError Status

func (e statusError) Error() string {
	return "status " + Status(e).String()
}
