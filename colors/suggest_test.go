// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestName(t *testing.T) {
	s, ok := SuggestName("blu")
	assert.True(t, ok)
	assert.Equal(t, "blue", s)

	s, ok = SuggestName(" Ornage ")
	assert.True(t, ok)
	assert.Equal(t, "orange", s)

	s, ok = SuggestName("darkslategrey")
	assert.True(t, ok)
	assert.Equal(t, "darkslategrey", s)

	_, ok = SuggestName("")
	assert.False(t, ok)
	_, ok = SuggestName("#zzzzzzzzzzzzzz")
	assert.False(t, ok)
}
