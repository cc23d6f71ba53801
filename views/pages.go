// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"time"

	"github.com/danielhkuo/mood-diary/models"
)

// Base is embedded by every page
type Base struct {
	L     Locale
	Title string
	Loc   *time.Location
}

// Record is a stored record plus what the templates show for it
type Record struct {
	models.EmotionRecord
	ImageURL string
}

type IndexPage struct {
	Base
	Summary  string
	Error    string
	ImageURL string
	Diary    string
	Records  []Record
}

type HistoryPage struct {
	Base
	Date    string
	Prev    string
	Next    string
	IsToday bool
	Records []Record
}

type MonthStatsPage struct {
	Base
	Stats  models.MonthStats
	Years  []int
	Months []int
}

type EditPage struct {
	Base
	Record Record
}

type ErrorPage struct {
	Base
	Status  int
	Message string
}

// AllMonths is the month selector range
var AllMonths = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
