// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func returns(v int, fail bool) (int, error) {
	if fail {
		return 0, fmt.Errorf("returns: %w", errTest)
	}
	return v, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := Log(errTest)
	assert.ErrorIs(t, err, errTest)

	assert.Equal(t, 3, Log1(returns(3, false)))
	assert.Equal(t, 0, Log1(returns(3, true)))
	assert.Equal(t, 5, Ignore1(returns(5, false)))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, 2, Must1(returns(2, false)))
	assert.Panics(t, func() { Must1(returns(2, true)) })
}

func where() string {
	return CallerInfo()
}

func TestCallerInfo(t *testing.T) {
	ci := where()
	assert.Contains(t, ci, "errors_test.go:")
	assert.Contains(t, ci, "TestCallerInfo")
}

func TestReexports(t *testing.T) {
	err := Join(errTest, New("other"))
	assert.True(t, Is(err, errTest))
	assert.Equal(t, errTest, Unwrap(fmt.Errorf("wrap: %w", errTest)))
}
