// Package session owns the single logged-in session record.
//
// A Session is written to exactly one of two backends: the persistent tier
// when the user asked to be remembered, the volatile tier otherwise. The tier
// also decides the expiry threshold (24h vs 1h by default). Lookups read the
// persistent tier first.
//
// Storage failures never escape a Store: unreadable or malformed records are
// logged and treated as "logged out".
package session
