package qtx

import (
	"context"

	"github.com/qbixus/qtx-xa/internal"
)

// WithTransactionScope возвращает производный по отношению к ctx контекст с новой транзакционной зоной.
// Если не указано иное, то зона создается с опцией WithTxRequired.
//
// Возвращает результирующий контекст и complete- и dispose- функции для зоны. Зона, создавшая транзакцию, фиксирует
// ее в complete и отменяет в dispose, если complete не вызывался. Зона чужой транзакции только помечает ее к откату в
// dispose без complete; завершает такую транзакцию ее владелец.
//
// Участники завершения получают ctx без отмены: прерывание ctx не прерывает фиксацию, начатую в complete.
func WithTransactionScope(ctx context.Context, opts ...ScopeOption) (
	newCtx context.Context, complete func() error, dispose func() error,
) {
	internal.Assert(ctx != nil, "#args: ctx")
	options := scopeOptions{mode: scopeRequired}
	for _, opt := range opts {
		opt(&options)
	}

	s := &scope{ctx: context.WithoutCancel(ctx)}
	switch options.mode {
	case scopeExplicit:
		s.tx = options.tx
	case scopeRequired:
		if s.tx = CurrentTransaction(ctx); s.tx == nil {
			s.owned = NewCommittableTransaction(options.txOpts...)
			s.tx = s.owned
		}
	case scopeRequiresNew:
		s.owned = NewCommittableTransaction(options.txOpts...)
		s.tx = s.owned
	case scopeSuppress:
	}

	return WithTransaction(ctx, s.tx), s.complete, s.dispose
}

// scope - транзакционная зона. owned задан, если транзакция создана зоной; tx == nil для зоны без транзакции.
type scope struct {
	ctx        context.Context
	tx         Transaction
	owned      *CommittableTransaction
	terminated bool
}

func (s *scope) complete() error {
	if s.terminated {
		return ErrInvalidOperation
	}
	s.terminated = true
	if s.owned == nil {
		return nil
	}
	return s.owned.Commit(s.ctx)
}

func (s *scope) dispose() error {
	if s.terminated {
		return nil
	}
	s.terminated = true
	switch {
	case s.owned != nil:
		return s.owned.Rollback(s.ctx)
	case s.tx != nil:
		return s.tx.SetRollbackOnly()
	}
	return nil
}

// ---

type scopeMode int

const (
	scopeRequired scopeMode = iota
	scopeRequiresNew
	scopeSuppress
	scopeExplicit
)

type ScopeOption func(*scopeOptions)

// WithScopeTransaction создает зону с указанной транзакцией.
func WithScopeTransaction(tx Transaction) ScopeOption {
	internal.Assert(tx != nil, "#args")
	return func(options *scopeOptions) {
		options.tx = tx
		options.mode = scopeExplicit
	}
}

// WithTxRequired создает зону либо с текущей транзакцией, либо с новой.
func WithTxRequired() ScopeOption {
	return func(options *scopeOptions) { options.mode = scopeRequired }
}

// WithRequiresNewTx создает зону с новой транзакцией.
func WithRequiresNewTx() ScopeOption {
	return func(options *scopeOptions) { options.mode = scopeRequiresNew }
}

// WithSuppressTx создает зону без транзакции.
func WithSuppressTx() ScopeOption {
	return func(options *scopeOptions) { options.mode = scopeSuppress }
}

// WithScopeTxOptions задает опции транзакций, создаваемых зоной.
func WithScopeTxOptions(opts ...TxOption) ScopeOption {
	return func(options *scopeOptions) { options.txOpts = append(options.txOpts, opts...) }
}

type scopeOptions struct {
	mode   scopeMode
	tx     Transaction
	txOpts []TxOption
}
