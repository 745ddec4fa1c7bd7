// Package logging builds the file-backed zap logger shared across the
// process. Because the terminal is owned by the presenter UI, a misdirected
// log line corrupts the screen; routing everything through New keeps log
// output out of the TTY entirely.
package logging
