package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError 에러를 파싱하여 사용자 친화적인 메시지와 코드로 변환
// 보안상 민감한 정보는 숨기되, 사용자가 문제를 해결할 수 있는 정보 제공
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM 기본 에러
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. PostgreSQL 에러 파싱

	// 2-1. Unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		if strings.Contains(errStrLower, "email") || strings.Contains(errStrLower, "idx_users_email") {
			return ErrorInfo{
				Code:    AuthEmailAlreadyExists,
				Message: "이미 사용 중인 이메일입니다",
			}
		}
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "이미 존재하는 데이터입니다",
		}
	}

	// 2-2. Foreign key constraint violation (23503)
	// 사전 검사를 통과했더라도 동시 요청으로 제약 위반이 날 수 있으므로 최종 방어선 역할
	if strings.Contains(errStrLower, "foreign key constraint") {
		if strings.Contains(errStrLower, "still referenced") || strings.Contains(errStrLower, "is still referenced by") {
			return ErrorInfo{
				Code:    ResourceInUse,
				Message: getInUseMessage(context),
			}
		}
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "참조하는 데이터를 찾을 수 없습니다",
		}
	}

	// 2-3. Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "필수 항목이 누락되었습니다",
		}
	}

	// 3. 네트워크/연결 에러
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "데이터베이스 연결에 실패했습니다. 잠시 후 다시 시도해주세요",
		}
	}

	// 4. 기본 내부 서버 오류
	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

// getNotFoundMessage context에 따른 Not Found 메시지
func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "store") {
		return "매장을 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "billboard") {
		return "빌보드를 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "category") {
		return "카테고리를 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "size") {
		return "사이즈를 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "color") {
		return "색상을 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "product") {
		return "상품을 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "order") {
		return "주문을 찾을 수 없습니다"
	}

	return "요청한 데이터를 찾을 수 없습니다"
}

// getInUseMessage 참조 중 삭제 불가 메시지 (의존 데이터를 먼저 제거하도록 안내)
func getInUseMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "billboard") {
		return "이 빌보드를 사용하는 카테고리를 먼저 삭제해주세요"
	}
	if strings.Contains(contextLower, "category") {
		return "이 카테고리를 사용하는 상품을 먼저 삭제해주세요"
	}
	if strings.Contains(contextLower, "size") {
		return "이 사이즈를 사용하는 상품을 먼저 삭제해주세요"
	}
	if strings.Contains(contextLower, "color") {
		return "이 색상을 사용하는 상품을 먼저 삭제해주세요"
	}
	if strings.Contains(contextLower, "product") {
		return "이 상품을 포함한 주문이 있어 삭제할 수 없습니다"
	}
	if strings.Contains(contextLower, "store") {
		return "매장에 연결된 데이터가 있어 삭제할 수 없습니다"
	}

	return "연결된 데이터가 있어 삭제할 수 없습니다"
}

// getDefaultErrorMessage context에 따른 기본 에러 메시지
func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") {
		return "등록 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}
	if strings.Contains(contextLower, "update") {
		return "수정 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}
	if strings.Contains(contextLower, "delete") {
		return "삭제 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}

	return "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
}

// ParseAndRespond 에러를 분석해 바로 응답까지 내려준다.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
