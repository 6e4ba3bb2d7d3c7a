package model

import "time"

// Counselor は相談窓口として紹介するカウンセラーを表す。
// PortraitData/PortraitMimeは登録時にimageURLから取得した画像データ。
// 取得できなかった場合はnil/空のまま保存される。
type Counselor struct {
	ID             string
	Name           string
	Specialization string
	Bio            string
	ContactNumber  string
	ImageURL       string
	PortraitData   []byte
	PortraitMime   string
	CreatedAt      time.Time
}
