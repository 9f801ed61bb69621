// Package publish uploads rendered schema docs to S3.
//
// A publish run puts every file under the configured prefix and then
// deletes stale objects left over from previous runs, so the bucket
// always mirrors the latest render.
package publish
