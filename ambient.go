package qtx

import (
	"context"
)

// WithTransaction возвращает производный контекст с текущей (ambient) транзакцией tx. nil снимает текущую
// транзакцию.
func WithTransaction(ctx context.Context, tx Transaction) context.Context {
	return context.WithValue(ctx, contextKey[Transaction]{}, tx)
}

func CurrentTransaction(ctx context.Context) Transaction {
	tx, ok := ctx.Value(contextKey[Transaction]{}).(Transaction)
	if !ok {
		return nil
	}
	return tx
}

// EnlistCurrent присоединяет res к текущей транзакции ctx. Без текущей транзакции ничего не делает и возвращает
// false.
func EnlistCurrent(ctx context.Context, res RMIdentifier) (bool, error) {
	tx := CurrentTransaction(ctx)
	if tx == nil {
		return false, nil
	}
	return true, tx.EnlistResource(ctx, res)
}

// RegisterCurrent регистрирует синхронизацию в текущей транзакции ctx. Без текущей транзакции ничего не делает и
// возвращает false.
func RegisterCurrent(ctx context.Context, s Synchronization) (bool, error) {
	tx := CurrentTransaction(ctx)
	if tx == nil {
		return false, nil
	}
	return true, tx.RegisterSynchronization(s)
}
