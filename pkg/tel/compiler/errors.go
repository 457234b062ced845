// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package compiler

import (
	"errors"
	"fmt"

	"github.com/consensys/go-telingo/pkg/util/source"
)

// ErrMalformedAtom indicates a theory term which was expected to denote an atom
// (e.g. "p(X)" or "-q") but does not.
var ErrMalformedAtom = errors.New("malformed atom")

// ErrMalformedFormula indicates a theory atom or term which does not denote a
// temporal formula, such as an unknown operator or an operator applied to the
// wrong number of arguments.
var ErrMalformedFormula = errors.New("malformed formula")

// ErrUnsupportedTemporalOperand indicates a temporal operator whose step count
// cannot be evaluated arithmetically.
var ErrUnsupportedTemporalOperand = errors.New("unsupported temporal operand")

// Error describes a failure to translate (part of) a theory atom.  Every error
// is classified by one of the sentinel errors above, which can be checked using
// errors.Is(), and records the region of the original text responsible.
type Error struct {
	kind error
	span source.Span
	msg  string
}

func newError(kind error, span source.Span, format string, args ...any) *Error {
	return &Error{kind, span, fmt.Sprintf(format, args...)}
}

// Kind returns the sentinel error classifying this error.
func (e *Error) Kind() error {
	return e.kind
}

// Span returns the region of the original text responsible for this error.
func (e *Error) Span() source.Span {
	return e.span
}

// Message returns the (unclassified) message of this error.
func (e *Error) Message() string {
	return e.msg
}

func (e *Error) Error() string {
	return e.kind.Error() + ": " + e.msg
}

// Unwrap enables errors.Is() to match the sentinel classifying this error.
func (e *Error) Unwrap() error {
	return e.kind
}
