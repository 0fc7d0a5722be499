package shared

import (
	"github.com/google/uuid"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 泛型實體 ID 值對象（UUID）
//
// 泛型參數 T 為標記類型，只用於編譯期區分：
// EntityID[RowMarker] 與 EntityID[ServiceListMarker] 是不同類型，不能互相賦值。
//
// 使用範例：
//
//	type RowMarker struct{}
//	type RowID = shared.EntityID[RowMarker]
//
//	id := shared.NewEntityID[RowMarker]()
//	parsed, err := shared.EntityIDFromString[RowMarker](s, ErrInvalidRowID)
type EntityID[T any] struct {
	value uuid.UUID
}

// NewEntityID 生成新的實體 ID（UUID v4）
func NewEntityID[T any]() EntityID[T] {
	return EntityID[T]{value: uuid.New()}
}

// EntityIDFromString 從字串解析實體 ID
//
// 參數：
//
//	s - UUID 字串
//	errTemplate - 解析失敗時返回的錯誤（由各 bounded context 提供）
//
// 若 errTemplate 支援 WithContext，返回的錯誤會附帶 input 與 parse_error。
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	id, err := uuid.Parse(s)
	if err != nil {
		if domainErr, ok := errTemplate.(interface {
			WithContext(keyValues ...interface{}) error
		}); ok {
			return EntityID[T]{}, domainErr.WithContext(
				"input", s,
				"parse_error", err.Error(),
			)
		}
		return EntityID[T]{}, errTemplate
	}
	if id == uuid.Nil {
		return EntityID[T]{}, errTemplate
	}
	return EntityID[T]{value: id}, nil
}

// String 小寫 UUID 字串
func (e EntityID[T]) String() string {
	return e.value.String()
}

// Equals 比較兩個同類型 ID
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 是否為零值 ID
//
// 空 ID 出現在未初始化的欄位，或解析失敗後的返回值。
func (e EntityID[T]) IsEmpty() bool {
	return e.value == uuid.Nil
}
