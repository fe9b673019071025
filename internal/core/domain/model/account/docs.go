// Package account provides the Account aggregate: a participant's wallet.
// Balances move only through credits and debits, and debits never overdraw.
package account
