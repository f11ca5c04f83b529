package qtx

import "context"

// RMIdentifier позволяет определить, что два участника представляют один и тот же диспетчер ресурсов.
type RMIdentifier interface {
	// IsSameRM reports whether other is managed by the same resource manager.
	IsSameRM(other RMIdentifier) (bool, error)
}

// XAResource - блокирующий диспетчер ресурсов (RM), участник 2PC.
// Ошибки сообщаются через *XAError; коды XA_RB* означают голос за откат.
type XAResource interface {
	RMIdentifier
	Start(ctx context.Context, xid XID, flags Flags) error
	End(ctx context.Context, xid XID, flags Flags) error
	// Prepare returns VotePrepared or VoteReadOnly.
	Prepare(ctx context.Context, xid XID) (Vote, error)
	Commit(ctx context.Context, xid XID, onePhase bool) error
	Rollback(ctx context.Context, xid XID) error
}

// AsyncXAResource - неблокирующий диспетчер ресурсов. Каждый шаг возвращает Future, завершаемый участником
// самостоятельно. Участники, реализующие этот интерфейс, присоединяются к транзакции без [ResourceConverter].
type AsyncXAResource interface {
	RMIdentifier
	StartAsync(ctx context.Context, xid XID, flags Flags) *Future[Void]
	EndAsync(ctx context.Context, xid XID, flags Flags) *Future[Void]
	PrepareAsync(ctx context.Context, xid XID) *Future[Vote]
	CommitAsync(ctx context.Context, xid XID, onePhase bool) *Future[Void]
	RollbackAsync(ctx context.Context, xid XID) *Future[Void]
}

// Synchronization - участник без голоса, получающий уведомления до и после завершения транзакции.
// Ошибки участника журналируются и не прерывают завершение транзакции.
type Synchronization interface {
	// BeforeCompletion is called before any resource is prepared. An error marks the transaction rollback-only.
	BeforeCompletion(ctx context.Context) error
	// AfterCompletion is called with the final status once the second phase is over.
	AfterCompletion(ctx context.Context, status Status) error
}

// Transaction - транзакция с множественными участниками-диспетчерами ресурсов, взаимодействие с которыми
// производится по протоколу Two Phase Commit (2PC), и участниками-синхронизациями.
type Transaction interface {

	// XID возвращает идентификатор транзакции.
	XID() XID

	// Status возвращает текущий статус транзакции.
	Status() Status

	// EnlistResource присоединяет диспетчер ресурсов, реализующий [XAResource] или [AsyncXAResource].
	// Повторное присоединение того же диспетчера (по IsSameRM) игнорируется.
	// Может использоваться конкурентно.
	//
	// Возвращает ErrRollbackOnly если транзакция помечена к откату или участник проголосовал за откат при Start,
	// ErrIllegalState если статус транзакции не допускает присоединения, и ErrSystem при прочих ошибках Start.
	EnlistResource(ctx context.Context, res RMIdentifier) error

	// RegisterSynchronization регистрирует участника-синхронизацию. Дубликаты не исключаются.
	// Может использоваться конкурентно.
	//
	// Возвращает ErrRollbackOnly если транзакция помечена к откату и ErrIllegalState если статус транзакции не
	// допускает регистрации.
	RegisterSynchronization(sync Synchronization) error

	// SetRollbackOnly помечает транзакцию к откату. Идемпотентен.
	//
	// Возвращает ErrIllegalState если транзакция завершена или находится на фазе голосования.
	SetRollbackOnly() error

	// Rollback отменяет все изменения в транзакции.
	// Блокируется на все время выполнения отмены. Если ctx отменяется раньше, возвращает ErrInterrupted, а отмена
	// продолжается в фоне.
	//
	// Возвращает nil если изменения отменены, ErrIllegalState если транзакция уже завершена или завершается, и
	// эвристическую ошибку если участники сообщили об эвристическом исходе.
	Rollback(ctx context.Context) error
}
