package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "foo", "bar")
	ts.Equal("bar", ctx.Value("foo"))
}

func (ts *testsuite) TestWithValues() {
	ctx := WithValues(Background(), map[string]interface{}{
		"a": "b",
		"c": "d",
	})
	ts.Equal("b", ctx.Value("a"))
	ts.Equal("d", ctx.Value("c"))
}

func (ts *testsuite) TestRequestID() {
	ts.Equal("", RequestID(Background()))

	ctx := WithRequestID(Background(), "req-1")
	ts.Equal("req-1", RequestID(ctx))

	child, cancel := WithTimeout(ctx, time.Second)
	defer cancel()
	ts.Equal("req-1", RequestID(child))
}

func (ts *testsuite) TestWithCancel() {
	ctx, cancel := WithCancel(Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context not cancelled")
	}
	ts.Equal(context.Canceled, ctx.Err())
}

func (ts *testsuite) TestTimeout() {
	ctx, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context not timed out")
	}
	ts.Equal(context.DeadlineExceeded, ctx.Err())
}

func (ts *testsuite) TestWithContext() {
	parent := WithRequestID(Background(), "req-2")
	inner, cancel := context.WithCancel(context.Background())
	cancel()

	ctx := WithContext(parent, inner)
	ts.Equal(context.Canceled, ctx.Err())
	ts.Equal(parent.Logger, ctx.Logger)
}
