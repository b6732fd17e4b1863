package platform

// Package platform contains OS/platform integration and input glue:
// filesystem helpers, filename sanitizing, URL normalizing, batch files and
// playlist expansion via the ytdlp library.
