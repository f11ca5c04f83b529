package qtx

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// run выполняет завершение транзакции. Шаг N+1 участника не начинается, пока шаг N не завершен для всех
// предшествующих участников; параллельного обхода нет.
func (tx *CommittableTransaction) run(ctx context.Context, commit bool, reg registry, done func(Void, error)) {
	start := time.Now()
	op := opName(commit)
	ctx, span := tx.startSpan(ctx, op)

	var failure error
	if commit {
		phaseEvent(span, "prepare", len(reg.resources))
		if !tx.prepare(ctx, reg) {
			commit = false
			failure = txError(KindRollback, op, tx.xid, tx.RollbackCause())
		}
	} else {
		tx.endAssociations(ctx, reg, TMFail)
	}

	phaseEvent(span, "complete", len(reg.resources))
	status, err := tx.finish(ctx, reg, commit)
	if err == nil {
		err = failure
	}

	tx.metrics.recordCompletion(ctx, op, status, time.Since(start))
	logFn := tx.logger.Info
	if err != nil {
		logFn = tx.logger.Warn
	}
	logFn("tx.complete.outcome",
		zap.String("op", op),
		zap.Stringer("status", status),
		zap.Int("resources", len(reg.resources)),
		zap.Int("synchronizations", len(reg.syncs)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		zap.Error(err),
	)
	endSpan(span, status, err)
	done(Void{}, err)
}

// prepare - первая фаза. Возвращает false, если транзакция должна быть отменена.
func (tx *CommittableTransaction) prepare(ctx context.Context, reg registry) bool {
	for i, s := range reg.syncs {
		if err := safeCall(func() error { return s.BeforeCompletion(ctx) }); err != nil {
			tx.metrics.recordParticipantFailure(ctx, "before_completion")
			tx.logger.Warn("tx.prepare.before_completion.failed", zap.Int("synchronization", i), zap.Error(err))
			tx.markRollbackOnly(err)
		}
	}

	flags := TMSuccess
	if tx.Status() == StatusMarkedRollback {
		flags = TMFail
	}
	tx.endAssociations(ctx, reg, flags)

	// Помеченная к откату транзакция не голосует
	if !tx.transition(StatusActive, StatusPreparing) {
		tx.logger.Debug("tx.prepare.skipped", zap.Error(tx.RollbackCause()))
		return false
	}

	for i, er := range reg.resources {
		vote, err := await(er.async.PrepareAsync(ctx, tx.xid))
		if err == nil {
			switch vote {
			case VotePrepared, VoteReadOnly:
			case VoteRollback:
				err = NewXAError(XARBRollback, nil)
			default:
				err = txError(KindSystem, "prepare", tx.xid, fmt.Errorf("invalid vote %v", vote))
			}
		}
		if err != nil {
			er.vote = VoteRollback
			tx.metrics.recordParticipantFailure(ctx, "prepare")
			if isRollbackCoded(err) {
				tx.logger.Info("tx.prepare.rollback_vote", zap.Int("resource", i), zap.Error(err))
			} else {
				tx.logger.Warn("tx.prepare.failed", zap.Int("resource", i), zap.Error(err))
			}
			tx.markRollbackOnly(err)
			return false
		}
		er.vote = vote
	}

	return tx.transition(StatusPreparing, StatusPrepared)
}

// endAssociations завершает ассоциации всех ресурсов. Ошибки не прерывают обход и помечают транзакцию к откату.
func (tx *CommittableTransaction) endAssociations(ctx context.Context, reg registry, flags Flags) {
	for i, er := range reg.resources {
		_, err := await(er.async.EndAsync(ctx, tx.xid, flags))
		if err == nil {
			continue
		}
		tx.metrics.recordParticipantFailure(ctx, "end")
		if isRollbackCoded(err) {
			tx.logger.Info("tx.end.rollback_vote", zap.Int("resource", i), zap.Error(err))
		} else {
			tx.logger.Error("tx.end.failed", zap.Int("resource", i), zap.Error(err))
		}
		tx.markRollbackOnly(err)
	}
}

// finish - вторая фаза: фиксация или отмена ресурсов, определение окончательного статуса, уведомление синхронизаций
// и очистка реестра.
func (tx *CommittableTransaction) finish(ctx context.Context, reg registry, commit bool) (Status, error) {
	if commit {
		tx.setStatus(StatusCommitting)
	} else {
		tx.setStatus(StatusRollingBack)
	}

	out := newOutcome(commit)
	for i, er := range reg.resources {
		if er.vote == VoteReadOnly {
			continue
		}
		var err error
		if commit {
			_, err = await(er.async.CommitAsync(ctx, tx.xid, false))
		} else {
			_, err = await(er.async.RollbackAsync(ctx, tx.xid))
		}
		if err != nil {
			tx.metrics.recordParticipantFailure(ctx, out.op())
			tx.logger.Warn("tx."+out.op()+".resource.failed", zap.Int("resource", i), zap.Error(err))
		}
		out.add(err)
	}

	status, err := out.resolve(tx.xid)
	if status == StatusUnknown {
		tx.metrics.recordHeuristic(ctx, out.kind)
		tx.logger.Error("tx.complete.heuristic", zap.Stringer("outcome", out.kind), zap.Error(err))
	}
	tx.setStatus(status)

	for i, s := range reg.syncs {
		if serr := safeCall(func() error { return s.AfterCompletion(ctx, status) }); serr != nil {
			tx.metrics.recordParticipantFailure(ctx, "after_completion")
			tx.logger.Warn("tx.complete.after_completion.failed", zap.Int("synchronization", i), zap.Error(serr))
		}
	}

	tx.clear()
	return status, err
}

// safeCall вызывает участника-синхронизацию, преобразуя панику в ошибку.
func safeCall(call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return call()
}
