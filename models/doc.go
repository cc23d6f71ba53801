// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types.

# Domain Types

  - EmotionRecord: one row of emotion_records
  - EmotionCount: (emotion, count) pair for statistics
  - MonthStats: counts per emotion over one calendar month

# Request Types

  - UpdateDiaryRequest: diary

# Response Types

Types for JSON responses:

  - RecordResponse: record plus localized emotion name and image URL
  - UploadResponse: record, summary
  - ListRecordsResponse: date, records
  - MonthStatsResponse: stats, localized names, selectable years
  - ErrorResponse: error, message

Confidence is always a fraction in [0, 1]; pages render it as a percentage.
*/
package models
