// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/account).
// This root package holds the Error catalog, the sentinel errors each Error
// unwraps to, and the Result type every application service returns instead
// of a bare error for expected failures.
package domain
