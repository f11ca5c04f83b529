package qtx

import (
	"context"
	"sync"
)

// Void - результат шага участника, не возвращающего значения.
type Void = struct{}

// Future - результат асинхронного шага участника транзакции. Завершается ровно один раз.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// NewFuture возвращает незавершенный Future и функцию его завершения. Повторные вызовы функции завершения
// игнорируются.
func NewFuture[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.complete
}

// Completed возвращает уже завершенный Future.
func Completed[T any](val T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.complete(val, err)
	return f
}

// Failed возвращает Future, завершенный с ошибкой err.
func Failed[T any](err error) *Future[T] {
	var zero T
	return Completed(zero, err)
}

func (f *Future[T]) complete(val T, err error) {
	f.once.Do(func() {
		f.val, f.err = val, err
		close(f.done)
	})
}

// Done возвращает канал, закрываемый при завершении.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result блокируется до завершения и возвращает результат.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.val, f.err
}

// Wait блокируется до завершения или до отмены ctx. В последнем случае возвращает ErrInterrupted с причиной
// ctx.Err(); сама операция при этом продолжается.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, txError(KindInterrupted, "wait", XID{}, ctx.Err())
	}
}

// await ожидает nil-безопасно: отсутствующий Future участника считается системной ошибкой.
func await[T any](f *Future[T]) (T, error) {
	if f == nil {
		var zero T
		return zero, txError(KindSystem, "await", XID{}, errNilFuture)
	}
	return f.Result()
}
