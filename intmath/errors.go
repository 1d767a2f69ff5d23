// Copyright 2026 go-intmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intmath

import "fmt"

// DomainError is the panic payload raised for an operand outside an
// operation's domain: a negative value passed to any operation, zero
// passed to a logarithm, or a logarithm base below 2.
type DomainError struct {
	Op    string // operation name: "sqrt", "cbrt", "log", "ln", "log base"
	Value int64  // the rejected operand or base
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("intmath: %s is undefined for %d", e.Op, e.Value)
}
