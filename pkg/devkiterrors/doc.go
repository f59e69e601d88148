// Package devkiterrors provides error definitions shared by the DevKit
// installer tooling.
//
// Errors are wrapped with additional context where they occur and matched
// with [errors.Is].
package devkiterrors
