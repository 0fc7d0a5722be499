package lineitem

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

const (
	ErrCodeInvalidQuantity   ErrorCode = "QUANTITY_INVALID"
	ErrCodeInvalidRowID      ErrorCode = "ROW_ID_INVALID"
	ErrCodeEmptyServiceID    ErrorCode = "SERVICE_ID_EMPTY"
	ErrCodeDuplicateRowID    ErrorCode = "ROW_ID_DUPLICATE"
	ErrCodeNegativeBasePrice ErrorCode = "BASE_PRICE_NEGATIVE"
)

// DomainError 服務明細領域錯誤
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

	return &DomainError{Code: e.Code, Message: e.Message, Context: ctx}
}

// Is 以錯誤代碼比較
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

var (
	// ErrInvalidQuantity 數量必須 >= 1
	ErrInvalidQuantity = &DomainError{
		Code:    ErrCodeInvalidQuantity,
		Message: "quantity must be at least 1",
	}

	// ErrInvalidRowID rowId 不是有效的 UUID
	ErrInvalidRowID = &DomainError{
		Code:    ErrCodeInvalidRowID,
		Message: "row id is not a valid identifier",
	}

	// ErrEmptyServiceID 服務識別碼為空
	ErrEmptyServiceID = &DomainError{
		Code:    ErrCodeEmptyServiceID,
		Message: "service id cannot be empty",
	}

	// ErrDuplicateRowID 同一集合內 rowId 重複
	ErrDuplicateRowID = &DomainError{
		Code:    ErrCodeDuplicateRowID,
		Message: "row id already exists in the collection",
	}

	// ErrNegativeBasePrice 基準價為負數
	ErrNegativeBasePrice = &DomainError{
		Code:    ErrCodeNegativeBasePrice,
		Message: "base price cannot be negative",
	}
)
