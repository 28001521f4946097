// Package domain contains the core entities and value objects for apiq.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (HTTP, file system, logging) and
// contains only data and the rules that belong to it.
//
// # Entities
//
//   - [Config]: The persisted profile document (default pointer + profiles)
//   - [Profile]: A named bag of connection fields (base_url, token, ...)
//   - [RequestOptions]: Per-invocation overrides parsed from the command line
//   - [ResolvedRequest]: The fully materialized outbound request
//   - [ResolvedResponse]: The reply to a ResolvedRequest
//
// # Errors
//
// Error classes are sentinel values checked with errors.Is. [ExitCode] maps
// them to the process exit status.
package domain
