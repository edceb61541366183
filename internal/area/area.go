// Package area is the single source of truth for the fixed area ordering
// and prefecture→region lookup used by every listing endpoint. Pages must
// not re-declare these tables.
package area

// Special area values
const (
	Nationwide = "全国"
	Other      = "その他"
)

// UnknownRank is the sort rank for an empty or unrecognized area.
// It places the row after every recognized area.
const UnknownRank = 999

// ordered is the fixed display order: 全国 first, the 47 prefectures
// north to south, then foreign countries, then その他.
var ordered = []string{
	Nationwide,
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県",
	"岐阜県", "静岡県", "愛知県", "三重県",
	"滋賀県", "京都府", "大阪府", "兵庫県", "奈良県", "和歌山県",
	"鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県",
	"福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
	"アメリカ", "カナダ", "イギリス", "フランス", "ドイツ", "オランダ",
	"スウェーデン", "フィンランド", "エストニア", "イスラエル",
	"インド", "シンガポール", "中国", "韓国", "台湾", "タイ",
	"ベトナム", "インドネシア", "オーストラリア", "ブラジル",
	Other,
}

var rankOf = func() map[string]int {
	m := make(map[string]int, len(ordered))
	for i, a := range ordered {
		m[a] = i
	}
	return m
}()

// Rank returns the position of the area in the fixed ordering.
// Empty or unrecognized areas return UnknownRank.
func Rank(area string) int {
	if r, ok := rankOf[area]; ok {
		return r
	}
	return UnknownRank
}

// Known reports whether the area appears in the fixed ordering
func Known(area string) bool {
	_, ok := rankOf[area]
	return ok
}

// Ordered returns the fixed area ordering. Callers must not mutate it.
func Ordered() []string {
	return ordered
}
