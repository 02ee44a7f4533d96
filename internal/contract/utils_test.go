package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		decile   int
		expected string
	}{
		{"lowest decile", 1, LowValue},
		{"top of low band", 4, LowValue},
		{"bottom of medium band", 5, MediumValue},
		{"top of medium band", 7, MediumValue},
		{"bottom of high band", 8, HighValue},
		{"highest decile", 10, HighValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.decile))
		})
	}
}

func TestGetColorLabelContainsPlainText(t *testing.T) {
	// Colored output wraps the plain label in escape codes; the text itself
	// must survive unchanged.
	for _, decile := range []int{1, 5, 8} {
		assert.Contains(t, GetColorLabel(decile), GetPlainLabel(decile))
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "YES", "True"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "false", "0", "NO"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("on")
	assert.Error(t, err)
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, SplitCommaList(""))
	assert.Nil(t, SplitCommaList("   "))
	assert.Equal(t, []string{"a", "b"}, SplitCommaList("a,b"))
	assert.Equal(t, []string{"a", "b"}, SplitCommaList(" a , ,b, "))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 20))
	assert.Equal(t, "Posses...", TruncateText("Possession of Cannabis", 9))
	// Width too small to truncate safely returns the input unchanged.
	assert.Equal(t, "abcd", TruncateText("abcd", 3))
}
