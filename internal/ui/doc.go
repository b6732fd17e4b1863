// Package ui renders user-facing console output: styled status lines for the
// download pipeline and byte progress bars for running transfers.
package ui
