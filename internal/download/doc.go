// Package download implements the per-item audio and video operations and the
// sequential job pipeline that expands playlists and batch inputs into items.
// Streams are resolved by a Resolver, pumped chunk by chunk into ffmpeg or a
// temporary file, and reported to the console through a Reporter.
package download
