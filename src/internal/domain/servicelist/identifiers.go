package servicelist

import "github.com/jackyeh168/autoservice/src/internal/domain/shared"

// ListMarker 是 ListID 的標記類型
type ListMarker struct{}

// ListID 服務清單的唯一標識符
type ListID = shared.EntityID[ListMarker]

// NewListID 生成新的清單 ID（UUID v4）
func NewListID() ListID {
	return shared.NewEntityID[ListMarker]()
}

// ListIDFromString 從字串解析清單 ID，失敗時返回 ErrInvalidListID
func ListIDFromString(s string) (ListID, error) {
	return shared.EntityIDFromString[ListMarker](s, ErrInvalidListID)
}
