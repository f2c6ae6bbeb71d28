package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSensitive(t *testing.T) {
	assert.Equal(t, "11****44", MaskSensitive("11223344"))
	assert.Equal(t, "****", MaskSensitive("123"))
	assert.Equal(t, "****", MaskSensitive("1234"))
	assert.Equal(t, "", MaskSensitive(""))
	assert.Equal(t, "54****89", MaskSensitive("5491122334489"))
}

func TestMaskSensitiveNeverLeaksMiddle(t *testing.T) {
	masked := MaskSensitive("11223344")
	assert.NotContains(t, masked, "2233")
}
