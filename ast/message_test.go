package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPushToFirstArgCreatesArgAndChain(t *testing.T) {
	plus := NewMessage(NewOperator("+", 3))
	operand := NewMessage(NewIdentifier("b"))

	PushToFirstArg(plus, operand)

	require.Len(t, plus.Args, 1)
	require.Len(t, plus.Args[0].Chains, 1)
	require.Equal(t, []*Message{operand}, plus.Args[0].Chains[0].Messages)
}

func TestPushToFirstArgAppendsToExistingChain(t *testing.T) {
	plus := NewMessage(NewOperator("+", 3))
	first := NewMessage(NewIdentifier("b"))
	second := NewMessage(NewIdentifier("c"))

	PushToFirstArg(plus, first)
	PushToFirstArg(plus, second)

	require.Len(t, plus.Args, 1)
	require.Len(t, plus.Args[0].Chains, 1)
	if diff := cmp.Diff([]*Message{first, second}, plus.Args[0].Chains[0].Messages); diff != "" {
		t.Errorf("unexpected chain contents (-want +got):\n%s", diff)
	}
}

func TestPushToFirstArgLeavesLaterArgsAlone(t *testing.T) {
	call := NewMessage(NewIdentifier("f"))
	call.AddArg().AddChain().Append(NewMessage(NewIdentifier("a")))
	second := call.AddArg()
	second.AddChain().Append(NewMessage(NewIdentifier("b")))

	PushToFirstArg(call, NewMessage(NewIdentifier("extra")))

	require.Len(t, call.Args, 2)
	require.Len(t, call.Args[0].Chains[0].Messages, 2)
	require.Len(t, call.Args[1].Chains[0].Messages, 1)
}

func TestMessageChainEmpty(t *testing.T) {
	c := &MessageChain{}
	require.True(t, c.Empty())
	c.Append(NewMessage(NewIdentifier("x")))
	require.False(t, c.Empty())
}
