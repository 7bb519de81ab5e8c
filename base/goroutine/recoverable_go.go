package goroutine

import (
	"fmt"

	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/base/utils"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

func (e *PanicEvent) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Panic)
}

type RecoverableGoOptions struct {
	name           string
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type RecoverableGoOptionsFunc = func(*RecoverableGoOptions)

func WithName(name string) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.name = name
	}
}

func WithBeforeStart(f func()) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel yields one
// PanicEvent if f panicked, otherwise it is closed when f returns.
func RecoverableGo(f func(), fns ...RecoverableGoOptionsFunc) <-chan *PanicEvent {
	opts := RecoverableGoOptions{}
	for _, fn := range fns {
		fn(&opts)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if opts.afterEnded != nil {
				opts.afterEnded()
			}

			p := recover()
			if p == nil {
				close(panicChan)
				return
			}

			stack := utils.Stack(3)
			log.Log().WithFields(log.Fields{
				"err":       p,
				"goroutine": opts.name,
				"stack":     string(stack),
			}).Error("panic")

			if opts.afterRecovered != nil {
				opts.afterRecovered(p, stack)
			}

			panicChan <- &PanicEvent{p, stack}
			close(panicChan)
		}()

		if opts.beforeStart != nil {
			opts.beforeStart()
		}

		f()
	}()

	return panicChan
}

// Wait blocks until the goroutine behind ch ends and returns its panic as an
// error, or nil on a normal return
func Wait(ch <-chan *PanicEvent) error {
	if ev, ok := <-ch; ok && ev != nil {
		return ev
	}
	return nil
}
