package model

// Package model defines domain data structures used across the tool: download
// options and their allow-lists, job items, playlists, stream renditions and
// status enums.
