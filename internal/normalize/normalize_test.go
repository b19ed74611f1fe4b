package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumehub/internal/normalize"
)

func TestStringRepairsEscapes(t *testing.T) {
	assert.Equal(t, "张三", normalize.String("\\u5f20\\u4e09"))
	assert.Equal(t, "张三 likes Go", normalize.String("\\u5f20\\u4e09 likes Go"))
	assert.Equal(t, "plain ascii", normalize.String("plain ascii"))
	assert.Equal(t, "", normalize.String(""))
}

func TestStringLeavesInvalidRunesAlone(t *testing.T) {
	// Lone surrogate halves are not valid runes and must survive verbatim.
	assert.Equal(t, "\\ud800", normalize.String("\\ud800"))
	assert.Equal(t, "\\udfff tail", normalize.String("\\udfff tail"))
	// Too-short sequences never match the pattern.
	assert.Equal(t, "\\u12", normalize.String("\\u12"))
}

func TestStringIdempotent(t *testing.T) {
	in := "\\u59d3\\u540d: \\u5f20\\u4e09, city: \\u5317\\u4eac"
	once := normalize.String(in)
	assert.Equal(t, "姓名: 张三, city: 北京", once)
	assert.Equal(t, once, normalize.String(once))
}

func TestValueWalksNestedStructures(t *testing.T) {
	in := map[string]any{
		"name": "\\u5f20\\u4e09",
		"age":  28,
		"tags": []any{"\\u6280\\u80fd", "plain", 7},
		"profile": map[string]any{
			"city": "\\u5317\\u4eac",
		},
	}

	got := normalize.Value(in).(map[string]any)

	assert.Equal(t, "张三", got["name"])
	assert.Equal(t, 28, got["age"])
	assert.Equal(t, []any{"技能", "plain", 7}, got["tags"])
	assert.Equal(t, "北京", got["profile"].(map[string]any)["city"])
}

func TestValueDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"name": "\\u5f20\\u4e09"}
	_ = normalize.Value(in)
	assert.Equal(t, "\\u5f20\\u4e09", in["name"])
}

func TestValuePassesThroughScalars(t *testing.T) {
	assert.Equal(t, 42, normalize.Value(42))
	assert.Equal(t, true, normalize.Value(true))
	assert.Nil(t, normalize.Value(nil))
	assert.Equal(t, 3.14, normalize.Value(3.14))
}
