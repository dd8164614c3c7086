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

// Package vataerr implements the error aggregation and classification used
// across the library's core packages.
package vataerr

// Errors is a slice of error that itself implements error.
type Errors []error

// Error implements the error interface.
func (e Errors) Error() string {
	return ToString([]error(e))
}

// String implements the stringer interface.
func (e Errors) String() string {
	return e.Error()
}

// New returns a slice of error with a single element err.
// If err is nil, returns nil.
func New(err error) Errors {
	if err == nil {
		return nil
	}
	return []error{err}
}

// Append appends err to errs if it is not nil and returns the result.
func Append(errs []error, err error) Errors {
	if err == nil {
		return errs
	}
	return append(errs, err)
}

// AppendAll appends newErrs to errs and returns the result.
func AppendAll(errs []error, newErrs []error) Errors {
	if len(newErrs) == 0 {
		return errs
	}
	for _, e := range newErrs {
		errs = Append(errs, e)
	}
	return errs
}

// ToString returns a string representation of errs. Nil errors are skipped.
func ToString(errs []error) string {
	var out, sep string
	for _, e := range errs {
		if e == nil {
			continue
		}
		out += sep + e.Error()
		sep = ", "
	}
	return out
}
