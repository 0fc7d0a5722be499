package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ===========================
// 稅率常數
// ===========================

// VATMultiplier 固定 VAT 乘數（23%），gross = net * VATMultiplier
//
// 稅率不可設定；整個系統只有單一稅區。
var VATMultiplier = decimal.RequireFromString("1.23")

// vatRate = VATMultiplier - 1
var vatRate = VATMultiplier.Sub(decimal.NewFromInt(1))

var hundred = decimal.NewFromInt(100)

// round2 四捨五入到 2 位小數（0.005 進位，遠離零方向）
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ===========================
// PriceTriple 值對象
// ===========================

// PriceTriple 價格三元組 { net, gross, tax }
//
// 不可變：所有運算都返回新的 PriceTriple。
//
// 建構規則：
// - 計算器產出的三元組，gross 由「已四捨五入的 net + 已四捨五入的 tax」重建，
//   因此 net + tax == gross 在 2 位小數下精確成立
// - 由淨價推導的基準價（PriceFromNet）三個欄位各自獨立四捨五入
type PriceTriple struct {
	net   decimal.Decimal
	gross decimal.Decimal
	tax   decimal.Decimal
}

// NewPriceTriple 建構函數（checked 版本）
//
// 建構約束：net >= 0 且 gross >= 0；tax 不限制符號。
// 傳入值原樣保存，不做四捨五入（後端給的基準價可能帶更多小數）。
func NewPriceTriple(net, gross, tax decimal.Decimal) (PriceTriple, error) {
	if net.IsNegative() || gross.IsNegative() {
		return PriceTriple{}, ErrNegativePrice.WithContext(
			"net", net.String(),
			"gross", gross.String(),
		)
	}
	return newPriceTripleUnchecked(net, gross, tax), nil
}

// MustPriceTriple 從字串建構，解析失敗或違反約束時 panic
//
// 僅用於常數與測試資料。
func MustPriceTriple(net, gross, tax string) PriceTriple {
	p, err := NewPriceTriple(
		decimal.RequireFromString(net),
		decimal.RequireFromString(gross),
		decimal.RequireFromString(tax),
	)
	if err != nil {
		panic(err)
	}
	return p
}

// newPriceTripleUnchecked 內部建構函數
// 計算器的結果可以是負數（例如減價金額大於基準價），由 Validator 負責攔截
func newPriceTripleUnchecked(net, gross, tax decimal.Decimal) PriceTriple {
	return PriceTriple{net: net, gross: gross, tax: tax}
}

// PriceFromNet 由淨價推導基準價
//
// net = round2(amount)、gross = round2(amount * V)、tax = round2(amount * (V-1))，
// 三者各自獨立四捨五入（尚未涉及折扣，不使用重建規則）。
func PriceFromNet(amount decimal.Decimal) (PriceTriple, error) {
	if amount.IsNegative() {
		return PriceTriple{}, ErrNegativePrice.WithContext("net", amount.String())
	}
	return newPriceTripleUnchecked(
		round2(amount),
		round2(amount.Mul(VATMultiplier)),
		round2(amount.Mul(vatRate)),
	), nil
}

// reconstructFromParts 最終價格的四捨五入規則
//
// roundedNet = round2(net)、roundedTax = round2(tax)、gross = round2(roundedNet + roundedTax)。
// gross 永遠不從未四捨五入的 gross 直接取整，以保持與已儲存資料逐位相容。
func reconstructFromParts(net, tax decimal.Decimal) PriceTriple {
	roundedNet := round2(net)
	roundedTax := round2(tax)
	return newPriceTripleUnchecked(roundedNet, round2(roundedNet.Add(roundedTax)), roundedTax)
}

// Net 淨價
func (p PriceTriple) Net() decimal.Decimal {
	return p.net
}

// Gross 含稅價
func (p PriceTriple) Gross() decimal.Decimal {
	return p.gross
}

// Tax 稅額
func (p PriceTriple) Tax() decimal.Decimal {
	return p.tax
}

// Round2 三個欄位各自四捨五入到 2 位小數
func (p PriceTriple) Round2() PriceTriple {
	return newPriceTripleUnchecked(round2(p.net), round2(p.gross), round2(p.tax))
}

// Sub 逐欄相減（p - other），用於計算折扣差額
func (p PriceTriple) Sub(other PriceTriple) PriceTriple {
	return newPriceTripleUnchecked(
		p.net.Sub(other.net),
		p.gross.Sub(other.gross),
		p.tax.Sub(other.tax),
	)
}

// IsNegative 任一金額欄位為負
func (p PriceTriple) IsNegative() bool {
	return p.net.IsNegative() || p.gross.IsNegative()
}

// Equals 數值比較（1.5 與 1.50 視為相等）
func (p PriceTriple) Equals(other PriceTriple) bool {
	return p.net.Equal(other.net) && p.gross.Equal(other.gross) && p.tax.Equal(other.tax)
}

// String 除錯用表示
func (p PriceTriple) String() string {
	return fmt.Sprintf("{net: %s, gross: %s, tax: %s}",
		p.net.StringFixed(2), p.gross.StringFixed(2), p.tax.StringFixed(2))
}
