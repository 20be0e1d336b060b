/*
Package log provides global diagnostic output control across the whole application.
Logging comes in four levels: Silent, Major, Minor and Debug with each level more
detailed than the previous. It's up to the application to decide which output belongs
with which level. Levels are inclusive, so, e.g., if MinorLevel is set that implies
MajorLevel logging.

Unlike most loggers the default output stream is Stderr, not Stdout. dnsdiff reserves
Stdout exclusively for the diff report so that it can be piped or captured cleanly;
everything operational goes to the error stream. The default level is Silent and the
DNSDIFF_LOG environment variable (major, minor or debug) raises it.

The Print and Printf interfaces are similar to the fmt versions with a few subtle
differences due to the need to prefix lines. The main difference is that if the
resulting string contains multiple lines they are all printed with the prefix for the
logging level. The second difference is that a trailing newline is not needed and
excess ones are trimmed.

Specialist output functions external to this package should still use log.Out() to
access the current io.Writer for the purposes of capturing output for tests.
*/
package log
