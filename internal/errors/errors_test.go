package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("정산 데이터 파일을 찾을 수 없습니다.")
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "NOT_FOUND", err.ErrorCode)
	assert.Equal(t, "정산 데이터 파일을 찾을 수 없습니다.", err.Error())
}

func TestInternalWithCause(t *testing.T) {
	cause := fmt.Errorf("read: connection reset")
	err := InternalWithCause("조회 중 오류가 발생했습니다", cause)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "read: connection reset", err.Details)
}

func TestAsAPIError(t *testing.T) {
	t.Run("passes through APIError", func(t *testing.T) {
		orig := NotFound("missing")
		assert.Same(t, orig, AsAPIError(orig, "fallback"))
	})

	t.Run("wraps plain error", func(t *testing.T) {
		got := AsAPIError(fmt.Errorf("boom"), "처리 중 오류가 발생했습니다")
		assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
		assert.Equal(t, "처리 중 오류가 발생했습니다", got.Message)
		assert.Equal(t, "boom", got.Details)
	})
}
