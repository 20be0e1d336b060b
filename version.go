package main

// Version and ReleaseDate are updated from ChangeLog.md as part of the release
// process.
const (
	Version     = "v0.3.1"
	ReleaseDate = "2024-02-11"
)
