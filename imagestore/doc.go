// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package imagestore stores uploaded diary photos.

# Naming

NewFilename turns the client's file name into a random UUID plus the
lower-cased original extension, so user-supplied names never reach the disk:

	name := imagestore.NewFilename("내 사진.JPG") // "1f0c...e2.jpg"

# Backends

  - LocalStore: files in a directory, served by the router under /uploads/
  - MinioStore: objects in a bucket, served from the bucket's public URL

Both implement Store. Delete is idempotent: removing a missing image
succeeds.
*/
package imagestore
