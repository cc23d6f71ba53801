// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package diary implements the mood diary operations on top of the image
store, the analysis collaborator and the record store.

# Upload

	res, err := svc.Upload(ctx, diary.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		Diary:       text,
	})

Steps: save the image under a generated name, analyze it with strict face
detection, classify (dominant label plus the neutral→sad relabel), insert one
record. Failures are reported with distinct errors, checked with errors.Is:

	ErrNoImage       no file in the request
	ErrNoFace        strict detection found no face
	ErrAnalysis      collaborator failed or returned no usable scores
	ErrImageStorage  the image could not be written
	ErrStorage       the record could not be inserted

Any failure after the image is saved removes it again, so a failed upload
leaves neither a record nor a file.

# Reading and Editing

  - History: records of one calendar day, newest first
  - MonthStats: per-emotion counts over [first of month, first of next month)
  - UpdateDiary: changes only the diary text; ErrNotFound for unknown IDs
  - Delete: removes the row and its image; repeating it is a no-op

Day and month boundaries are computed in the configured time zone.
*/
package diary
