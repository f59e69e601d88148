// Package log builds the [log/slog] handlers used for diagnostic output.
package log
