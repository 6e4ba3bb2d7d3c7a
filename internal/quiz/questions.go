package quiz

import "github.com/hitoshi/kokoro/internal/model"

// 質問票と行動プランはプロセス起動時に読み込まれる静的設定。
// リクエスト処理中に変更されることはなく、全リクエストで共有される。
// 文言は元のサービスが提供していた内容をそのまま保持している。

// defaultOptions は設問1〜9で共通の選択肢。
var defaultOptions = []model.QuestionOption{
	{ID: 0, Text: "Bilkul nahi"},
	{ID: 1, Text: "Kuch din"},
	{ID: 2, Text: "Aadhe se zyada din"},
	{ID: 3, Text: "Lagbhag har din"},
}

// DefaultQuestions は10問の固定質問票を返す。
// 返り値は呼び出しごとに新しいスライスだが、要素は共有されるため変更してはならない。
func DefaultQuestions() []model.Question {
	return []model.Question{
		{
			ID:      1,
			Text:    "Pichle 2 hafto me, aap kitni baar kaam me mann na lagne ya udaas mehsus karne se pareshan rahe hain?",
			Options: defaultOptions,
		},
		{
			ID:      2,
			Text:    "Pichle 2 hafto me, kitni baar aapko cheezon me anand ya dilchaspi kam mehsus hui?",
			Options: defaultOptions,
		},
		{
			ID:      3,
			Text:    "Aapko neend aane me ya sote rehne me kitni pareshani hui?",
			Options: defaultOptions,
		},
		{
			ID:      4,
			Text:    "Aap kitni baar thaka hua ya kam energy wala mehsus karte hain?",
			Options: defaultOptions,
		},
		{
			ID:      5,
			Text:    "Aapki bhookh kam ya zyada hui hai?",
			Options: defaultOptions,
		},
		{
			ID:      6,
			Text:    "Aap kitni baar apne baare me bura mehsus karte hain ya khud ko doshi maante hain?",
			Options: defaultOptions,
		},
		{
			ID:      7,
			Text:    "Aapko cheezon par focus karne me kitni mushkil hoti hai, jaise akhbaar padhna ya TV dekhna?",
			Options: defaultOptions,
		},
		{
			ID:      8,
			Text:    "Kya aap itna dheere chalte ya bolte hain ki dusre log notice kar saken? Ya iska ulta - itne bechain rehte hain ki सामान्य se zyada ghoomte rehte hain?",
			Options: defaultOptions,
		},
		{
			ID:      9,
			Text:    "Kitni baar aapke mann me khayal aaya ki aap mar jaate to behtar hota, ya aap khud ko nuksaan pahunchana chahte hain?",
			Options: defaultOptions,
		},
		{
			ID:   10,
			Text: "In pareshaniyon ki vajah se aapko apne kaam, ghar ya logon ke saath milne-julne me kitni mushkil hui hai?",
			Options: []model.QuestionOption{
				{ID: 0, Text: "Bilkul mushkil nahi"},
				{ID: 1, Text: "Thodi mushkil"},
				{ID: 2, Text: "Bahut mushkil"},
				{ID: 3, Text: "Atyant mushkil"},
			},
		},
	}
}

// DefaultPlans はカテゴリごとの固定行動プラン（各3項目）を返す。
// カテゴリ集合{none, mild, moderate, severe}のすべてにエントリを持つ。
func DefaultPlans() map[model.Category][]string {
	return map[model.Category][]string{
		model.CategoryMild: {
			"Aaj 15 minute ke liye halki walk par jaayein.",
			"Apne pasand ka koi gaana sunein.",
			"Raat ko sone se pehle 3 aisi cheezein sochein jinke liye aap shukraguzar hain.",
		},
		model.CategoryModerate: {
			"Aaj 20 minute tak aisi exercise karein jisse halka pasina aaye (jaise jogging ya cycling).",
			"Kisi dost ya parivaar ke sadasya se 10 minute baat karein.",
			"Apne din ko plan karne ke liye ek choti to-do list banayein.",
		},
		model.CategorySevere: {
			"Yeh zaroori hai ki aap kisi professional se salah lein. Humne aapke liye kuch helpline numbers diye hain.",
			"Aaj 5 minute ke liye gehri saans lene ki practice karein.",
			"Ek surakshit aur shaant jagah par thoda samay bitayein.",
		},
		model.CategoryNone: {
			"Aapka score bahut accha hai! Apni mental health ko aise hi maintain karein.",
			"Aaj kuch naya seekhne ki koshish karein.",
			"Apni kisi hobby ke liye samay nikalein.",
		},
	}
}
