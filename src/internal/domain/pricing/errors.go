package pricing

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

const (
	// 折扣驗證（欄位層級訊息，可由使用者修正）
	ErrCodeDiscountNegative          ErrorCode = "DISCOUNT_NEGATIVE"
	ErrCodeDiscountPercentExceeded   ErrorCode = "DISCOUNT_PERCENT_EXCEEDED"
	ErrCodeDiscountAmountExceedsBase ErrorCode = "DISCOUNT_AMOUNT_EXCEEDS_BASE"
	ErrCodeDiscountFinalExceedsBase  ErrorCode = "DISCOUNT_FINAL_EXCEEDS_BASE"
	ErrCodeDiscountUnknownType       ErrorCode = "DISCOUNT_UNKNOWN_TYPE"

	// 建構 / 解碼
	ErrCodeNegativePrice       ErrorCode = "PRICE_NEGATIVE"
	ErrCodeUnknownDiscountKind ErrorCode = "DISCOUNT_KIND_UNKNOWN"
	ErrCodeUnknownTaxonomy     ErrorCode = "DISCOUNT_TAXONOMY_UNKNOWN"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 定價領域錯誤
//
// Code 用於上層映射（例如 HTTP 狀態碼或表單欄位提示），
// Message 為可直接顯示的訊息，Context 只用於除錯與日誌。
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	return e.withContext(keyValues...)
}

func (e *DomainError) withContext(keyValues ...interface{}) *DomainError {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（以錯誤代碼比較）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ===========================
// 預定義錯誤
// ===========================

// 折扣驗證錯誤，Message 即表單顯示的訊息
var (
	ErrDiscountNegative = &DomainError{
		Code:    ErrCodeDiscountNegative,
		Message: "discount value cannot be negative",
	}

	ErrDiscountPercentExceeded = &DomainError{
		Code:    ErrCodeDiscountPercentExceeded,
		Message: "percent discount cannot exceed 100%",
	}

	ErrDiscountAmountExceedsBase = &DomainError{
		Code:    ErrCodeDiscountAmountExceedsBase,
		Message: "discount amount cannot exceed base price",
	}

	ErrDiscountFinalExceedsBase = &DomainError{
		Code:    ErrCodeDiscountFinalExceedsBase,
		Message: "final price cannot exceed base price",
	}

	ErrDiscountUnknownType = &DomainError{
		Code:    ErrCodeDiscountUnknownType,
		Message: "unknown discount type",
	}
)

// 建構與解碼錯誤
var (
	ErrNegativePrice = &DomainError{
		Code:    ErrCodeNegativePrice,
		Message: "price components cannot be negative",
	}

	ErrUnknownDiscountKind = &DomainError{
		Code:    ErrCodeUnknownDiscountKind,
		Message: "discount kind is not part of the taxonomy",
	}

	ErrUnknownTaxonomy = &DomainError{
		Code:    ErrCodeUnknownTaxonomy,
		Message: "unknown discount taxonomy",
	}
)
