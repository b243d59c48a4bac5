// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/user). This root package
// holds sentinel errors, the classified error kinds, and the Result type that
// every fallible operation returns.
package domain
