// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the parameterized SQL for emotion_records.

Every method takes the request context, so the pooled connection it borrows
is returned on every exit path. Times are written and compared in UTC;
callers convert day and month boundaries before querying.

Missing rows surface as ErrNotFound from Get, UpdateDiary and Delete.
*/
package store
