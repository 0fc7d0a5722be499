package lineitem

import (
	"slices"

	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/samber/lo"
)

// ===========================
// Collection 明細集合
// ===========================

// Collection 有序的明細列集合
//
// 插入順序即顯示順序；同一集合內 rowId 不重複。
// Collection 不可變：每次變更都產生新的底層切片（copy-on-write），
// 持有舊值的讀者永遠看到完整的變更前狀態。
type Collection struct {
	items []LineItem
}

// EmptyCollection 空集合
func EmptyCollection() Collection {
	return Collection{}
}

// NewCollection 從既有明細建立集合（例如從已保存的預約載入）
//
// rowId 重複時返回 ErrDuplicateRowID。
func NewCollection(items ...LineItem) (Collection, error) {
	duplicates := lo.FindDuplicatesBy(items, func(item LineItem) string {
		return item.rowID.String()
	})
	if len(duplicates) > 0 {
		return Collection{}, ErrDuplicateRowID.WithContext("row_id", duplicates[0].rowID.String())
	}
	return Collection{items: slices.Clone(items)}, nil
}

// Items 返回明細列的副本
func (c Collection) Items() []LineItem {
	return slices.Clone(c.items)
}

// Len 明細列數
func (c Collection) Len() int {
	return len(c.items)
}

// IsEmpty 是否沒有任何明細
func (c Collection) IsEmpty() bool {
	return len(c.items) == 0
}

// Find 依 rowId 查找
func (c Collection) Find(rowID RowID) (LineItem, bool) {
	item, _, ok := c.find(rowID)
	return item, ok
}

// Contains 是否包含指定 rowId
func (c Collection) Contains(rowID RowID) bool {
	_, _, ok := c.find(rowID)
	return ok
}

// RowIDs 依顯示順序列出 rowId
func (c Collection) RowIDs() []RowID {
	return lo.Map(c.items, func(item LineItem, _ int) RowID {
		return item.rowID
	})
}

func (c Collection) find(rowID RowID) (LineItem, int, bool) {
	return lo.FindIndexOf(c.items, func(item LineItem) bool {
		return item.rowID.Equals(rowID)
	})
}

// appended 返回在尾端加上一列的新集合
func (c Collection) appended(item LineItem) Collection {
	next := make([]LineItem, 0, len(c.items)+1)
	next = append(next, c.items...)
	return Collection{items: append(next, item)}
}

// without 返回移除指定 rowId 的新集合；不存在時返回原集合
func (c Collection) without(rowID RowID) Collection {
	if !c.Contains(rowID) {
		return c
	}
	return Collection{items: lo.Reject(c.items, func(item LineItem, _ int) bool {
		return item.rowID.Equals(rowID)
	})}
}

// replace 對指定列套用 fn，返回新集合；rowId 不存在時返回原集合
func (c Collection) replace(rowID RowID, fn func(LineItem) LineItem) Collection {
	current, index, ok := c.find(rowID)
	if !ok {
		return c
	}
	next := slices.Clone(c.items)
	next[index] = fn(current)
	return Collection{items: next}
}

// ===========================
// 驗證
// ===========================

// RowValidation 單列的驗證結果
type RowValidation struct {
	RowID  RowID
	Result pricing.ValidationResult
}

// ValidateAll 依顯示順序驗證每一列的折扣
func (c Collection) ValidateAll() []RowValidation {
	return lo.Map(c.items, func(item LineItem, _ int) RowValidation {
		return RowValidation{RowID: item.rowID, Result: item.Validate()}
	})
}

// FirstInvalid 返回第一筆驗證失敗的列
func (c Collection) FirstInvalid() (RowValidation, bool) {
	return lo.Find(c.ValidateAll(), func(v RowValidation) bool {
		return !v.Result.IsValid
	})
}
