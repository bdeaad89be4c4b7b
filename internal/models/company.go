package models

// CompanyInfo 会社情報
type CompanyInfo struct {
	Name              string  `json:"name"`
	NameKana          string  `json:"name_kana"`
	Phone             string  `json:"phone"`      // 表示用
	PhoneIntl         string  `json:"phone_intl"` // 構造化データ用
	PostalCode        string  `json:"postal_code"`
	Region            string  `json:"region"`
	Locality          string  `json:"locality"`
	StreetAddress     string  `json:"street_address"`
	BusinessHours     string  `json:"business_hours"`
	Opens             string  `json:"opens"`
	Closes            string  `json:"closes"`
	FoundingYear      int     `json:"founding_year"`
	GoogleRating      float64 `json:"google_rating"`
	ReviewCount       int     `json:"review_count"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	GoogleMapURL      string  `json:"google_map_url"`
	CarsensorURL      string  `json:"carsensor_url"`
	CarsensorStockURL string  `json:"carsensor_stock_url"`
	InstagramURL      string  `json:"instagram_url"`
}

// Address 住所（郵便番号付き）
func (c CompanyInfo) Address() string {
	return "〒" + c.PostalCode + " " + c.Region + c.Locality + c.StreetAddress
}

// PhoneTel tel: リンク
func (c CompanyInfo) PhoneTel() string {
	digits := make([]rune, 0, len(c.Phone))
	for _, r := range c.Phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	return "tel:" + string(digits)
}

// YearsInBusiness 創業からの年数
func (c CompanyInfo) YearsInBusiness(year int) int {
	return year - c.FoundingYear
}

// FAQ よくある質問
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Service 提供サービス
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	LinkText    string `json:"link_text"`
	External    bool   `json:"external"`
}

// Company アスカオートステーション
var Company = CompanyInfo{
	Name:              "アスカオートステーション",
	NameKana:          "アスカオートステーション",
	Phone:             "080-3250-6741",
	PhoneIntl:         "+81-80-3250-6741",
	PostalCode:        "336-0977",
	Region:            "埼玉県",
	Locality:          "さいたま市緑区",
	StreetAddress:     "上野田678-1",
	BusinessHours:     "9:00〜18:00",
	Opens:             "09:00",
	Closes:            "18:00",
	FoundingYear:      2000,
	GoogleRating:      5.0,
	ReviewCount:       6,
	Latitude:          35.91137022089156,
	Longitude:         139.6940182981449,
	GoogleMapURL:      "https://maps.app.goo.gl/eNapSkTPYUf55xjq9",
	CarsensorURL:      "https://www.carsensor.net/shop/saitama/313920001/",
	CarsensorStockURL: "https://www.carsensor.net/shop/saitama/313920001/stocklist/",
	InstagramURL:      "https://www.instagram.com/askaautostation/",
}

// FAQs よくある質問一覧
var FAQs = []FAQ{
	{
		Question: "車検費用はいくらですか？",
		Answer:   "車種により異なります。当サイトの車検費用シミュレーションで法定費用を事前にご確認いただけます。整備費用はお車の状態によりますので、お気軽にお電話ください。",
	},
	{
		Question: "予約は必要ですか？",
		Answer:   "事前にお電話いただけるとスムーズです。当日でもお車の状態によっては対応可能ですので、まずはお電話ください。",
	},
	{
		Question: "代車はありますか？",
		Answer:   "代車のご用意がございます。ご予約時にお申し付けください。",
	},
	{
		Question: "支払い方法は？",
		Answer:   "現金またはクレジットカードでお支払いいただけます。",
	},
	{
		Question: "他店で購入した車でも大丈夫ですか？",
		Answer:   "もちろん大丈夫です。どこで購入されたお車でも、車検・整備・修理を承ります。お気軽にご相談ください。",
	},
}

// Services サービス一覧
var Services = []Service{
	{Title: "車検", Description: "法定費用を事前に確認", Link: "/inspection", LinkText: "費用を確認 →"},
	{Title: "修理・整備", Description: "お電話ください", Link: Company.PhoneTel(), LinkText: "電話する"},
	{Title: "板金・塗装", Description: "お電話ください", Link: Company.PhoneTel(), LinkText: "電話する"},
	{Title: "中古車販売", Description: "カーセンサーで在庫確認", Link: Company.CarsensorStockURL, LinkText: "在庫を見る →", External: true},
	{Title: "オークション代行", Description: "お探しします", Link: Company.PhoneTel(), LinkText: "電話する"},
	{Title: "買取", Description: "ご相談ください", Link: Company.PhoneTel(), LinkText: "電話する"},
}
