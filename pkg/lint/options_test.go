package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOption(t *testing.T) {
	opts := map[string]any{"flag": true, "label": "x"}

	assert.True(t, GetOption(opts, "flag", false))
	assert.Equal(t, "x", GetOption(opts, "label", ""))
	assert.Equal(t, "fallback", GetOption(opts, "missing", "fallback"))
	assert.Equal(t, 7, GetOption[int](opts, "label", 7)) // wrong type falls back
	assert.Equal(t, 7, GetOption(nil, "flag", 7))
}

func TestGetIntOption(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]any
		want int
	}{
		{"native int", map[string]any{"max": 42}, 42},
		{"float64 from JSON", map[string]any{"max": float64(42)}, 42},
		{"int64", map[string]any{"max": int64(42)}, 42},
		{"missing key", map[string]any{}, 30},
		{"wrong type", map[string]any{"max": "42"}, 30},
		{"nil map", nil, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetIntOption(tt.opts, "max", 30))
		})
	}
}

func TestGetStringOption(t *testing.T) {
	opts := map[string]any{"mode": "strict", "count": 3}

	assert.Equal(t, "strict", GetStringOption(opts, "mode", "loose"))
	assert.Equal(t, "loose", GetStringOption(opts, "missing", "loose"))
	assert.Equal(t, "loose", GetStringOption(opts, "count", "loose"))
}

func TestGetBoolOption(t *testing.T) {
	opts := map[string]any{"on": true, "label": "yes"}

	assert.True(t, GetBoolOption(opts, "on", false))
	assert.True(t, GetBoolOption(opts, "missing", true))
	assert.False(t, GetBoolOption(opts, "label", false))
}

func TestGetStringSliceOption(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]any
		want []string
	}{
		{"string slice", map[string]any{"words": []string{"a", "b"}}, []string{"a", "b"}},
		{"any slice from YAML", map[string]any{"words": []any{"a", "b"}}, []string{"a", "b"}},
		{"any slice drops non strings", map[string]any{"words": []any{"a", 1, "b"}}, []string{"a", "b"}},
		{"missing", map[string]any{}, []string{"d"}},
		{"wrong type", map[string]any{"words": "a,b"}, []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetStringSliceOption(tt.opts, "words", []string{"d"}))
		})
	}
}

func TestDecodeOptions(t *testing.T) {
	type ruleOpts struct {
		MaxLength int      `mapstructure:"max_length"`
		Phrases   []string `mapstructure:"phrases"`
	}

	var target ruleOpts
	err := DecodeOptions(map[string]any{
		"max_length": "40", // weak typing: strings convert
		"phrases":    []any{"tbd", "n/a"},
	}, &target)

	require.NoError(t, err)
	assert.Equal(t, 40, target.MaxLength)
	assert.Equal(t, []string{"tbd", "n/a"}, target.Phrases)
}

func TestDecodeOptions_NilMap(t *testing.T) {
	type ruleOpts struct {
		MaxLength int `mapstructure:"max_length"`
	}

	target := ruleOpts{MaxLength: 30}
	require.NoError(t, DecodeOptions(nil, &target))
	assert.Equal(t, 30, target.MaxLength)
}
