package qtx

import (
	"context"
	"errors"
	"fmt"
)

var errNilFuture = errors.New("participant returned nil future")

// ResourceConverter приводит блокирующий [XAResource] к неблокирующему [AsyncXAResource].
type ResourceConverter interface {
	Convert(res XAResource) AsyncXAResource
}

// ConverterFunc - функция-адаптер к [ResourceConverter].
type ConverterFunc func(res XAResource) AsyncXAResource

func (f ConverterFunc) Convert(res XAResource) AsyncXAResource {
	return f(res)
}

// GoroutineConverter выполняет каждый блокирующий вызов участника в отдельной горутине. Используется по умолчанию.
var GoroutineConverter ResourceConverter = ConverterFunc(func(res XAResource) AsyncXAResource {
	return &convertedResource{res: res, run: runInGoroutine}
})

// InlineConverter выполняет блокирующий вызов участника в вызывающей горутине и возвращает завершенный Future.
var InlineConverter ResourceConverter = ConverterFunc(func(res XAResource) AsyncXAResource {
	return &convertedResource{res: res, run: runInline}
})

type runner func(call func() (any, error)) *Future[any]

func runInGoroutine(call func() (any, error)) *Future[any] {
	f, complete := NewFuture[any]()
	go func() {
		complete(capture(call))
	}()
	return f
}

func runInline(call func() (any, error)) *Future[any] {
	return Completed(capture(call))
}

// capture преобразует панику участника в ErrSystem.
func capture(call func() (any, error)) (val any, err error) {
	defer func() {
		if r := recover(); r != nil {
			val, err = nil, txError(KindSystem, "participant", XID{}, fmt.Errorf("panic: %v", r))
		}
	}()
	return call()
}

type convertedResource struct {
	res XAResource
	run runner
}

func (c *convertedResource) IsSameRM(other RMIdentifier) (bool, error) {
	return c.res.IsSameRM(other)
}

func (c *convertedResource) StartAsync(ctx context.Context, xid XID, flags Flags) *Future[Void] {
	return voidOf(c.run(func() (any, error) { return nil, c.res.Start(ctx, xid, flags) }))
}

func (c *convertedResource) EndAsync(ctx context.Context, xid XID, flags Flags) *Future[Void] {
	return voidOf(c.run(func() (any, error) { return nil, c.res.End(ctx, xid, flags) }))
}

func (c *convertedResource) PrepareAsync(ctx context.Context, xid XID) *Future[Vote] {
	f := c.run(func() (any, error) { return c.res.Prepare(ctx, xid) })
	return mapFuture(f, func(v any) Vote {
		vote, _ := v.(Vote)
		return vote
	})
}

func (c *convertedResource) CommitAsync(ctx context.Context, xid XID, onePhase bool) *Future[Void] {
	return voidOf(c.run(func() (any, error) { return nil, c.res.Commit(ctx, xid, onePhase) }))
}

func (c *convertedResource) RollbackAsync(ctx context.Context, xid XID) *Future[Void] {
	return voidOf(c.run(func() (any, error) { return nil, c.res.Rollback(ctx, xid) }))
}

func voidOf(f *Future[any]) *Future[Void] {
	return mapFuture(f, func(any) Void { return Void{} })
}

func mapFuture[T, R any](f *Future[T], fn func(T) R) *Future[R] {
	select {
	case <-f.Done():
		v, err := f.Result()
		return Completed(fn(v), err)
	default:
	}
	out, complete := NewFuture[R]()
	go func() {
		v, err := f.Result()
		complete(fn(v), err)
	}()
	return out
}

// participant - присоединенный диспетчер ресурсов: исходное значение и его неблокирующая форма, определенная один
// раз при присоединении.
type participant struct {
	source RMIdentifier
	async  AsyncXAResource
}

func resolveParticipant(res RMIdentifier, conv ResourceConverter) (participant, error) {
	switch r := res.(type) {
	case nil:
		return participant{}, txError(KindInvalidArgument, "enlist", XID{}, errors.New("nil resource"))
	case AsyncXAResource:
		return participant{source: res, async: r}, nil
	case XAResource:
		if conv == nil {
			conv = GoroutineConverter
		}
		return participant{source: res, async: conv.Convert(r)}, nil
	}
	return participant{}, txError(KindInvalidArgument, "enlist", XID{},
		fmt.Errorf("%T implements neither XAResource nor AsyncXAResource", res))
}
