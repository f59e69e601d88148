// Package devkit provides the AI PC DevKit installation helpers.
//
// It exposes a tagged message logger, which writes lines prefixed with
// [Prefix], and a permissive path validator that accepts any non-empty text.
// Both helpers are stateless and never fail.
package devkit
