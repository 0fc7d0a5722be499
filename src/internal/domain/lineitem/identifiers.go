package lineitem

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jackyeh168/autoservice/src/internal/domain/shared"
)

// ===========================
// RowID - 明細列識別碼
// ===========================

// RowMarker 是 RowID 的標記類型
type RowMarker struct{}

// RowID 明細列的唯一標識符
//
// 建立時產生一次，之後不再變更也不重複使用；
// 與服務識別碼脫鉤，服務從自訂改為目錄服務時列的位置與編輯內容都保留。
type RowID = shared.EntityID[RowMarker]

// NewRowID 生成新的 RowID（UUID v4）
func NewRowID() RowID {
	return shared.NewEntityID[RowMarker]()
}

// RowIDFromString 從字串解析 RowID，失敗時返回 ErrInvalidRowID
func RowIDFromString(s string) (RowID, error) {
	return shared.EntityIDFromString[RowMarker](s, ErrInvalidRowID)
}

// ===========================
// ServiceID - 服務識別碼
// ===========================

const customServicePrefix = "custom-"

// ServiceID 服務的穩定識別碼
//
// 目錄服務使用後端給的 id；尚未保存的自訂服務使用 "custom-<uuid>"。
type ServiceID string

// NewCustomServiceID 為尚未存在於目錄的服務產生合成識別碼
func NewCustomServiceID() ServiceID {
	return ServiceID(customServicePrefix + uuid.NewString())
}

// ServiceIDFromString 去除前後空白，空字串返回 ErrEmptyServiceID
func ServiceIDFromString(s string) (ServiceID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrEmptyServiceID
	}
	return ServiceID(trimmed), nil
}

// IsCustom 是否為合成的自訂服務識別碼
func (id ServiceID) IsCustom() bool {
	return strings.HasPrefix(string(id), customServicePrefix)
}

// IsEmpty 是否為空
func (id ServiceID) IsEmpty() bool {
	return id == ""
}

// String 返回字串表示
func (id ServiceID) String() string {
	return string(id)
}
