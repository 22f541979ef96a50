package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// Window defaults
const (
	DefaultWindowDays          = 14
	DefaultHistoryLookbackDays = 365 // глубина поиска прошедших записей при очистке
	CopyForwardOffsetDays      = 7
)

// Default template for synthetic entries created by the backfill sweep
const (
	DefaultTemplateStart     types.TimeString = "09:00"
	DefaultTemplateEnd       types.TimeString = "20:00"
	DefaultTemplateWorkforce                  = 3
)

// Business validation constants
const (
	MinWindowDays = 1
	MaxWindowDays = 62
	MinWorkforce  = 0
	MaxWorkforce  = 1000
)

// Time format constants
const (
	TimeFormat = types.TimeFormat // HH:MM
	DateFormat = types.DateFormat // YYYY-MM-DD
)
