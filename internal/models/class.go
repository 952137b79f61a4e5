package models

import "github.com/shopspring/decimal"

// Class is one subject a tutor teaches, with an hourly cost.
type Class struct {
	ID      string          `db:"id" json:"id"`
	UserID  string          `db:"user_id" json:"user_id"`
	Subject string          `db:"subject" json:"subject"`
	Cost    decimal.Decimal `db:"cost" json:"cost"`
}

// ClassSchedule is one recurring weekly availability window of a class.
// Times are minute offsets from midnight; a query minute m is covered when
// FromMinutes <= m <= ToMinutes, inclusive on both ends.
type ClassSchedule struct {
	ID          string `db:"id" json:"id"`
	ClassID     string `db:"class_id" json:"class_id"`
	WeekDay     int    `db:"week_day" json:"week_day"`
	FromMinutes int    `db:"from_minutes" json:"from_minutes"`
	ToMinutes   int    `db:"to_minutes" json:"to_minutes"`
}

// Covers reports whether the window contains the given minute offset.
func (s ClassSchedule) Covers(minute int) bool {
	return s.FromMinutes <= minute && minute <= s.ToMinutes
}

// ClassWithUser is one flattened search result row: every class column plus
// the owning tutor's profile columns.
type ClassWithUser struct {
	ID       string          `db:"id" json:"id"`
	UserID   string          `db:"user_id" json:"user_id"`
	Subject  string          `db:"subject" json:"subject"`
	Cost     decimal.Decimal `db:"cost" json:"cost"`
	Name     string          `db:"name" json:"name"`
	Avatar   string          `db:"avatar" json:"avatar"`
	Whatsapp string          `db:"whatsapp" json:"whatsapp"`
	Bio      string          `db:"bio" json:"bio"`
}
