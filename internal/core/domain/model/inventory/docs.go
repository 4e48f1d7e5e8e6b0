// Package inventory provides the stock unit aggregate of the inventory ledger:
// on-hand quantities, allocation, release, cycle-count adjustment and bin location
// with its pick rank.
package inventory
