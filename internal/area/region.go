package area

// Region is one of Japan's 8 official geographic regions
type Region string

// Regions in display order
const (
	RegionHokkaido Region = "北海道"
	RegionTohoku   Region = "東北"
	RegionKanto    Region = "関東"
	RegionChubu    Region = "中部"
	RegionKinki    Region = "近畿"
	RegionChugoku  Region = "中国"
	RegionShikoku  Region = "四国"
	RegionKyushu   Region = "九州・沖縄"
)

var regionOrder = []Region{
	RegionHokkaido, RegionTohoku, RegionKanto, RegionChubu,
	RegionKinki, RegionChugoku, RegionShikoku, RegionKyushu,
}

var prefectureRegion = map[string]Region{
	"北海道": RegionHokkaido,
	"青森県": RegionTohoku, "岩手県": RegionTohoku, "宮城県": RegionTohoku,
	"秋田県": RegionTohoku, "山形県": RegionTohoku, "福島県": RegionTohoku,
	"茨城県": RegionKanto, "栃木県": RegionKanto, "群馬県": RegionKanto,
	"埼玉県": RegionKanto, "千葉県": RegionKanto, "東京都": RegionKanto, "神奈川県": RegionKanto,
	"新潟県": RegionChubu, "富山県": RegionChubu, "石川県": RegionChubu,
	"福井県": RegionChubu, "山梨県": RegionChubu, "長野県": RegionChubu,
	"岐阜県": RegionChubu, "静岡県": RegionChubu, "愛知県": RegionChubu,
	"三重県": RegionKinki, "滋賀県": RegionKinki, "京都府": RegionKinki,
	"大阪府": RegionKinki, "兵庫県": RegionKinki, "奈良県": RegionKinki, "和歌山県": RegionKinki,
	"鳥取県": RegionChugoku, "島根県": RegionChugoku, "岡山県": RegionChugoku,
	"広島県": RegionChugoku, "山口県": RegionChugoku,
	"徳島県": RegionShikoku, "香川県": RegionShikoku, "愛媛県": RegionShikoku, "高知県": RegionShikoku,
	"福岡県": RegionKyushu, "佐賀県": RegionKyushu, "長崎県": RegionKyushu,
	"熊本県": RegionKyushu, "大分県": RegionKyushu, "宮崎県": RegionKyushu,
	"鹿児島県": RegionKyushu, "沖縄県": RegionKyushu,
}

// RegionOf returns the region for a prefecture name.
// ok is false for foreign cities and unrecognized values.
func RegionOf(prefecture string) (Region, bool) {
	r, ok := prefectureRegion[prefecture]
	return r, ok
}

// RegionRank returns the position of the region in display order,
// or len(regions) for an unknown region.
func RegionRank(r Region) int {
	for i, v := range regionOrder {
		if v == r {
			return i
		}
	}
	return len(regionOrder)
}

// RegionsOrdered returns the 8 regions in display order
func RegionsOrdered() []Region {
	return regionOrder
}
