// Package picksheet provides the PickSheet aggregate: the sorted worklist a
// picker walks, item picking, completion and abandonment of cancelled orders.
package picksheet
