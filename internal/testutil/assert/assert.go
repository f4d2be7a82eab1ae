// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package assert provides the assertion helpers shared by the tests of this
// module, including tree comparisons built on go-cmp.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"go.yaml.in/yamltree/internal/tree"
)

type miniTB interface {
	Helper()
	Fatalf(string, ...any)
}

// formatSuffix builds an optional suffix from a printf-style format and args.
// If msgFormat is empty, an empty string is returned.
func formatSuffix(msgFormat string, args ...any) string {
	if msgFormat == "" {
		return ""
	}
	return " - " + fmt.Sprintf(msgFormat, args...)
}

// Equal asserts that two comparable values are equal.
func Equal(tb miniTB, want, got any) {
	tb.Helper()
	Equalf(tb, want, got, "")
}

// Equalf asserts that two values are equal, and reports a message if they are not.
func Equalf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if got != want {
		suffix := formatSuffix(msgFormat, args...)
		tb.Fatalf("got %v; want %v%s", got, want, suffix)
	}
}

// DeepEqual asserts that two values are deeply equal.
func DeepEqual(tb miniTB, want, got any) {
	tb.Helper()
	if !reflect.DeepEqual(got, want) {
		tb.Fatalf("got %+v; want %+v", got, want)
	}
}

// treeOptions lets go-cmp walk maps without looking at their key index.
var treeOptions = cmp.Options{
	cmpopts.IgnoreUnexported(tree.Map{}),
	cmpopts.EquateEmpty(),
}

// positionsIgnored additionally drops every position from the comparison.
var positionsIgnored = cmp.Options{
	treeOptions,
	cmpopts.IgnoreFields(tree.Scalar{}, "Position"),
	cmpopts.IgnoreFields(tree.Sequence{}, "Position"),
	cmpopts.IgnoreFields(tree.Map{}, "Position"),
}

// TreeEqual asserts that two document trees are identical, positions
// included. The failure message is a go-cmp diff.
func TreeEqual(tb miniTB, want, got tree.Node) {
	tb.Helper()
	if diff := cmp.Diff(want, got, treeOptions); diff != "" {
		tb.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

// SameShape asserts that two document trees hold the same values and styles
// in the same order, ignoring positions.
func SameShape(tb miniTB, want, got tree.Node) {
	tb.Helper()
	if diff := cmp.Diff(want, got, positionsIgnored); diff != "" {
		tb.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

// ErrorMatches asserts that an error matches a regular expression.
func ErrorMatches(tb miniTB, pattern string, err error) {
	tb.Helper()
	ErrorMatchesf(tb, pattern, err, "")
}

// ErrorMatchesf asserts that an error matches a regular expression, and reports a message if it does not.
func ErrorMatchesf(tb miniTB, pattern string, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err == nil {
		suffix := formatSuffix(msgFormat, args...)
		tb.Fatalf("got nil; want error matching %q%s", pattern, suffix)
		return
	}
	re, reErr := regexp.Compile(pattern)
	if reErr != nil {
		suffix := formatSuffix(msgFormat, args...)
		tb.Fatalf("invalid regexp %q: %v%s", pattern, reErr, suffix)
		return
	}
	if !re.MatchString(err.Error()) {
		suffix := formatSuffix(msgFormat, args...)
		tb.Fatalf("error %q does not match %q%s", err.Error(), pattern, suffix)
	}
}

// ErrorIs asserts that two errors are equal by using [errors.Is].
func ErrorIs(tb miniTB, got, want error) {
	tb.Helper()
	if !errors.Is(got, want) {
		tb.Fatalf("got %#v; want %#v", got, want)
	}
}

// ErrorAs asserts that an error can be assigned to target by using [errors.As].
func ErrorAs(tb miniTB, err error, target any) {
	tb.Helper()
	if err == nil {
		tb.Fatalf("got <nil>; want %s", reflect.TypeOf(target).Elem())
		return
	}
	if !errors.As(err, target) {
		tb.Fatalf("got %#v; want %s", err, reflect.TypeOf(target).Elem())
	}
}

// NoError asserts that an error is nil.
func NoError(tb miniTB, err error) {
	tb.Helper()
	NoErrorf(tb, err, "")
}

// NoErrorf asserts that an error is nil, and reports a message if it is not.
func NoErrorf(tb miniTB, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err != nil {
		suffix := formatSuffix(msgFormat, args...)
		tb.Fatalf("unexpected error: %v%s", err, suffix)
	}
}

// IsNil asserts that a value is nil.
func IsNil(tb miniTB, v any) {
	tb.Helper()
	if !isNil(v) {
		tb.Fatalf("got non-nil (type %T): %#v", v, v)
	}
}

// NotNil asserts that a value is not nil.
func NotNil(tb miniTB, v any) {
	tb.Helper()
	if isNil(v) {
		tb.Fatalf("got nil; want non-nil")
	}
}

// True asserts that a value is true.
func True(tb miniTB, got bool) {
	tb.Helper()
	Truef(tb, got, "")
}

// Truef asserts that a value is true, and reports a message if it is not.
func Truef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if !got {
		suffix := formatSuffix(msgFormat, args...)
		tb.Fatalf("got false; want true%s", suffix)
	}
}

// False asserts that a value is false.
func False(tb miniTB, got bool) {
	tb.Helper()
	if got {
		tb.Fatalf("got true; want false")
	}
}

// PanicMatches asserts that a function panics with a message matching the given pattern.
func PanicMatches(tb miniTB, pattern string, f func()) {
	tb.Helper()
	var pan any
	func() {
		defer func() { pan = recover() }()
		f()
	}()
	if pan == nil {
		tb.Fatalf("function did not panic; want panic matching %q", pattern)
		return
	}
	var pmsg string
	switch x := pan.(type) {
	case error:
		pmsg = x.Error()
	case string:
		pmsg = x
	default:
		pmsg = fmt.Sprint(x)
	}
	re, reErr := regexp.Compile(pattern)
	if reErr != nil {
		tb.Fatalf("invalid regexp %q: %v", pattern, reErr)
		return
	}
	if !re.MatchString(pmsg) {
		tb.Fatalf("panic %q does not match %q", pmsg, pattern)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
