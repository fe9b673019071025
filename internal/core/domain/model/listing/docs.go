// Package listing provides the Listing aggregate: a single batch offered for
// sale at a fixed price. A listing is consumed by at most one order; once
// consumed it never returns to the market.
package listing
