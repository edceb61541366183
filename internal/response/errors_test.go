package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Run("成功: 詳細ありはメッセージに連結", func(t *testing.T) {
		err := NewAppError(ErrCodeInternal, "失敗しました", "connection refused")
		assert.Equal(t, "失敗しました: connection refused", err.Error())
	})

	t.Run("成功: 詳細なしはメッセージのみ", func(t *testing.T) {
		err := NewNotFoundError("見つかりません", "")
		assert.Equal(t, "見つかりません", err.Error())
		assert.Equal(t, ErrCodeNotFound, err.Code)
	})
}

func TestSendError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("成功: エラーとコードを JSON で返す", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		SendError(c, http.StatusNotFound, ErrCodeNotFound, "見つかりません")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "見つかりません", "code": "NOT_FOUND"}`, w.Body.String())
	})

	t.Run("成功: コード省略時は error のみ", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		SendError(c, http.StatusBadRequest, "", "不正なリクエスト")

		assert.JSONEq(t, `{"error": "不正なリクエスト"}`, w.Body.String())
	})
}
