package task_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mu-tools/mu-sched/task"
)

func TestFunc_InvokeCallsUnderlyingFunction(t *testing.T) {
	var got any
	f := task.Func(func(arg any) { got = arg })

	var t1 task.Task = f
	t1.Invoke("hello")

	require.Equal(t, "hello", got)
}
