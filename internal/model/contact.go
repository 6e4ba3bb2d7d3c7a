package model

import "time"

// ContactSubmission は問い合わせフォームの送信内容を表す。
// 保存後は変更されない（追記専用）。
type ContactSubmission struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
