package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	err := Wait(RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("panic")
		},
		WithName("test"),
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	))

	assert.Equal(t, []string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"panic",
	}, res)
	if assert.Error(t, err) {
		assert.Equal(t, "panic", err.(*PanicEvent).Panic)
	}
}

func TestRecoverableGoNoPanic(t *testing.T) {
	ran := false
	err := Wait(RecoverableGo(func() { ran = true }))
	assert.NoError(t, err)
	assert.True(t, ran)
}
