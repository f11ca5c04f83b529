package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	t.Run("Не паникует при истинном условии", func(t *testing.T) {
		assert.NotPanics(t, func() { Assert(true, "#never") })
	})

	t.Run("Паникует с тегами и местом вызова", func(t *testing.T) {
		defer func() {
			msg, ok := recover().(string)
			assert.True(t, ok)
			assert.Contains(t, msg, "#ASSERTION_FAILED #args: ctx")
			assert.Contains(t, msg, "asserts_test.go:")
		}()

		// Act
		Assert(false, "#args:", "ctx")
	})
}
