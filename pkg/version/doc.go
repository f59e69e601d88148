// Package version provides version information for the DevKit installer.
//
// [Version] is set at link time; [Revision] falls back to the VCS revision
// recorded in the build info.
package version
