// Package filecache tracks files uploaded to the Gemini File API so repeated
// extraction runs against the same datasheet reuse the remote copy instead of
// re-uploading it.
//
// The remote store is ephemeral: uploads are retained for roughly 48 hours and
// then deleted. The cache maps the SHA-256 digest of local file content to the
// remote name and URI from the last upload, together with a conservative
// expiry deadline. Key behaviors:
//   - Content-addressed lookups: renaming or moving a file never misses,
//     editing a file never reuses a stale upload
//   - Safety margin on expiry so a reference is not handed out moments before
//     the remote deletes it
//   - Best-effort persistence in a single JSON document; corruption or read
//     failures degrade to an empty cache, never to an error
//   - Remote verification before reuse, failing open to a fresh upload
//
// The cache is advisory. Every failure path ends in "upload again", which is
// always correct, only slower.
package filecache
