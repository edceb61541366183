package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListOptions_Public(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want bool
	}{
		{"成功: 既定値は公開ビュー", ListOptions{}, true},
		{"成功: includeInactive は公開ビューでない", ListOptions{IncludeInactive: true}, false},
		{"成功: includePast は公開ビューでない", ListOptions{IncludePast: true}, false},
		{"成功: 両方指定も公開ビューでない", ListOptions{IncludeInactive: true, IncludePast: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Public())
		})
	}
}

// nil クライアントでもキャッシュ層は安全に素通りする
func TestListingCache_NilClient(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	var dest []string
	assert.False(t, cache.Get(ctx, "contest", &dest))

	// panic しないこと
	cache.Set(ctx, "contest", []string{"a"})
	cache.Invalidate(ctx, "contest")

	assert.False(t, cache.Get(ctx, "contest", &dest))
}

func TestTagsToJSON(t *testing.T) {
	t.Run("成功: nil は未指定としてそのまま nil", func(t *testing.T) {
		assert.Nil(t, tagsToJSON(nil))
	})

	t.Run("成功: 空スライスは空の JSON 配列", func(t *testing.T) {
		assert.JSONEq(t, `[]`, string(tagsToJSON([]string{})))
	})

	t.Run("成功: タグは JSON 配列に変換", func(t *testing.T) {
		assert.JSONEq(t, `["学生","AI"]`, string(tagsToJSON([]string{"学生", "AI"})))
	})
}
