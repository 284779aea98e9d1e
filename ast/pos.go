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

import "fmt"

// Pos identifies a byte offset in source text, along with the 1-based line
// and column it corresponds to. Nodes themselves do not carry positions
// (this front-end does not preserve whitespace/comment trivia); Pos values
// are produced only at the point a hard failure is reported during parsing.
type Pos struct {
	Offset    int
	Line, Col int
}

func (p Pos) String() string {
	if p.Line <= 0 || p.Col <= 0 {
		return fmt.Sprintf("offset %d", p.Offset)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
