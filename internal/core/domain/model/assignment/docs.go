// Package assignment provides the append-only record of assignment attempts.
//
// Every attempt to match an order with a partner produces exactly one
// Assignment record, successful or not. Records reference the order always
// and the partner whenever one was selected (including failure paths where a
// chosen partner turned out to be ineligible). Failed records carry a
// human-readable reason; records are immutable once created.
package assignment
