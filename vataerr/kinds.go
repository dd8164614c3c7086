// Copyright 2024 The Vata-Go Authors.
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

package vataerr

import "fmt"

// Kind classifies an error into one of the four categories of spec.md §7.
type Kind int

const (
	// KindMalformedInput covers parse errors, bad option values and unknown verbs.
	KindMalformedInput Kind = iota
	// KindPrecondition covers operations invoked on a configuration that
	// does not support them.
	KindPrecondition
	// KindUnimplemented covers paths that are known but not ported.
	KindUnimplemented
	// KindInternal covers invariant breaks: ref-count underflow, a nil
	// MTBDD node reached where one must not be nil, and similar bugs.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed input"
	case KindPrecondition:
		return "precondition violated"
	case KindUnimplemented:
		return "unimplemented"
	case KindInternal:
		return "internal assertion failure"
	default:
		return "unknown error kind"
	}
}

// KindedError pairs a Kind with an underlying message.
type KindedError struct {
	Kind Kind
	Msg  string
}

func (e *KindedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// MalformedInputf builds a KindedError of KindMalformedInput.
func MalformedInputf(format string, args ...interface{}) error {
	return &KindedError{Kind: KindMalformedInput, Msg: fmt.Sprintf(format, args...)}
}

// Preconditionf builds a KindedError of KindPrecondition.
func Preconditionf(format string, args ...interface{}) error {
	return &KindedError{Kind: KindPrecondition, Msg: fmt.Sprintf(format, args...)}
}

// Unimplementedf builds a KindedError of KindUnimplemented.
func Unimplementedf(format string, args ...interface{}) error {
	return &KindedError{Kind: KindUnimplemented, Msg: fmt.Sprintf(format, args...)}
}

// Internalf builds a KindedError of KindInternal. Callers that reach this
// path have observed a broken invariant; per spec.md §7, crashing with a
// diagnostic is an acceptable response, but the constructor itself never
// panics — callers decide whether to panic or propagate.
func Internalf(format string, args ...interface{}) error {
	return &KindedError{Kind: KindInternal, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a KindedError of the given Kind.
func Is(err error, k Kind) bool {
	ke, ok := err.(*KindedError)
	return ok && ke.Kind == k
}
