// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

// Message is a symbol plus its argument lists: `foo`, `foo()`, `foo(a, b)`.
// The empty-args case is the common one: a bare identifier is a
// zero-argument message.
type Message struct {
	Symbol Symbol
	Args   []*Argument
}

// NewMessage builds a Message with no arguments. Call AddArg to populate it.
func NewMessage(sym Symbol) *Message {
	return &Message{Symbol: sym}
}

// AddArg appends a new, empty argument position and returns it.
func (m *Message) AddArg() *Argument {
	arg := &Argument{}
	m.Args = append(m.Args, arg)
	return arg
}

// Argument is one comma-separated slot inside a bracketed argument list. It
// may itself hold multiple chains, separated by `;`: `f(a; b, c)` has two
// argument positions, the first containing two chains.
type Argument struct {
	Chains []*MessageChain
}

// AddChain appends a new, empty chain to this argument and returns it.
func (a *Argument) AddChain() *MessageChain {
	c := &MessageChain{}
	a.Chains = append(a.Chains, c)
	return c
}

// MessageChain is an ordered sequence of messages evaluated left to right as
// successive sends; it is the unit over which operator precedence is
// resolved, and is separated from its siblings by a terminator (`;` or a
// line ending).
type MessageChain struct {
	Messages []*Message
}

// NewMessageChain builds a chain from the given messages.
func NewMessageChain(msgs ...*Message) *MessageChain {
	return &MessageChain{Messages: msgs}
}

// Append adds a message to the end of the chain.
func (c *MessageChain) Append(m *Message) {
	c.Messages = append(c.Messages, m)
}

// Empty reports whether the chain holds no messages. A chain produced by
// the grammar parser is never empty; this is used internally while the
// restructurer is still assembling nested operator arguments.
func (c *MessageChain) Empty() bool {
	return len(c.Messages) == 0
}

// Program is the parser's top-level result: the sequence of message chains
// that make up a file, in source order.
type Program struct {
	Chains []*MessageChain
}

// PushToFirstArg materializes the nested shape operator restructuring
// requires: it ensures target has at least one argument position, ensures
// that argument has at least one (possibly empty) chain, and appends msg to
// that chain. Used by both the desugar pass and the precedence-climbing
// fold step (§4.5).
func PushToFirstArg(target *Message, msg *Message) {
	var arg *Argument
	if len(target.Args) == 0 {
		arg = target.AddArg()
	} else {
		arg = target.Args[0]
	}
	var chain *MessageChain
	if len(arg.Chains) == 0 {
		chain = arg.AddChain()
	} else {
		chain = arg.Chains[0]
	}
	chain.Append(msg)
}
