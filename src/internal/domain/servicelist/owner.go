package servicelist

import (
	"strings"

	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
)

// ===========================
// 清單擁有者
// ===========================

// OwnerKind 擁有服務清單的紀錄種類
type OwnerKind string

const (
	OwnerReservation OwnerKind = "reservation"
	OwnerVisit       OwnerKind = "visit"
	OwnerProtocol    OwnerKind = "protocol"
)

// ParseOwnerKind 解析擁有者種類（大小寫不敏感）
func ParseOwnerKind(s string) (OwnerKind, error) {
	kind := OwnerKind(strings.ToLower(strings.TrimSpace(s)))
	switch kind {
	case OwnerReservation, OwnerVisit, OwnerProtocol:
		return kind, nil
	}
	return "", ErrInvalidOwner.WithContext("owner_kind", s)
}

// DiscountTaxonomy 該種紀錄的 API 使用的折扣種類編碼
//
// 預約與到店紀錄使用新版表單（extended）；protocol 仍是舊表單（legacy）。
func (k OwnerKind) DiscountTaxonomy() pricing.Taxonomy {
	if k == OwnerProtocol {
		return pricing.TaxonomyLegacy
	}
	return pricing.TaxonomyExtended
}

// String 返回字串表示
func (k OwnerKind) String() string {
	return string(k)
}

// OwnerRef 指向擁有清單的紀錄（預約、到店紀錄或 protocol）
type OwnerRef struct {
	kind OwnerKind
	id   string
}

// NewOwnerRef 建立擁有者參照
func NewOwnerRef(kind OwnerKind, id string) (OwnerRef, error) {
	parsed, err := ParseOwnerKind(string(kind))
	if err != nil {
		return OwnerRef{}, err
	}
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return OwnerRef{}, ErrInvalidOwner.WithContext(
			"owner_kind", string(kind),
			"reason", "owner id cannot be empty",
		)
	}
	return OwnerRef{kind: parsed, id: trimmed}, nil
}

func (o OwnerRef) Kind() OwnerKind { return o.kind }
func (o OwnerRef) ID() string      { return o.id }

// String 例如 reservation/R-2024-001
func (o OwnerRef) String() string {
	return string(o.kind) + "/" + o.id
}
