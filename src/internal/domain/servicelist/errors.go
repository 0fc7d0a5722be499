package servicelist

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

const (
	ErrCodeInvalidListID     ErrorCode = "SERVICE_LIST_ID_INVALID"
	ErrCodeInvalidOwner      ErrorCode = "SERVICE_LIST_OWNER_INVALID"
	ErrCodeInvalidLineItems  ErrorCode = "SERVICE_LIST_ITEMS_INVALID"
	ErrCodeCorruptedItem     ErrorCode = "SERVICE_LIST_ITEM_CORRUPTED"
	ErrCodeListNotFound      ErrorCode = "SERVICE_LIST_NOT_FOUND"
	ErrCodeListAlreadyExists ErrorCode = "SERVICE_LIST_ALREADY_EXISTS"
	ErrCodeRepositoryError   ErrorCode = "SERVICE_LIST_REPOSITORY_ERROR"
)

// DomainError 服務清單領域錯誤
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

// ===========================
// 預定義錯誤
// ===========================

var (
	// ErrInvalidListID 清單 ID 格式無效
	ErrInvalidListID = &DomainError{
		Code:    ErrCodeInvalidListID,
		Message: "invalid service list id",
	}

	// ErrInvalidOwner 擁有者種類或 id 無效
	ErrInvalidOwner = &DomainError{
		Code:    ErrCodeInvalidOwner,
		Message: "invalid service list owner",
	}

	// ErrInvalidLineItems 至少一列折扣未通過驗證，Context 帶 row_id 與 reason
	ErrInvalidLineItems = &DomainError{
		Code:    ErrCodeInvalidLineItems,
		Message: "service list contains invalid line items",
	}

	// ErrCorruptedItem 資料庫中的明細無法重建
	ErrCorruptedItem = &DomainError{
		Code:    ErrCodeCorruptedItem,
		Message: "stored line item is corrupted",
	}
)

// Repository 錯誤
var (
	ErrListNotFound = &DomainError{
		Code:    ErrCodeListNotFound,
		Message: "service list not found",
	}

	ErrListAlreadyExists = &DomainError{
		Code:    ErrCodeListAlreadyExists,
		Message: "owner already has a service list",
	}

	ErrRepositoryError = &DomainError{
		Code:    ErrCodeRepositoryError,
		Message: "service list repository operation failed",
	}
)
