// Package logtail reads the end of vmgrid's debug log.
//
// While the TUI owns the terminal, the standard logger writes to the
// configured log_file (see package app). The logs subcommand uses ReadFile
// to show the most recent lines, optionally filtered by a plain substring:
//
//	lines, err := logtail.ReadFile(cfg.LogFile, 50, "inventory")
//
// Tail keeps at most n lines in memory regardless of file size.
package logtail
