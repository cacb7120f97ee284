// Package ordering filters and sorts scanned directory entries for display.
//
// Sorting is stable: entries that compare equal under the active key keep
// their scan order, in both directions. Descending order negates the
// comparison rather than reversing the result.
//
// Optional values (extension, timestamps) have a fixed total order:
// absent sorts before present when ascending, and therefore after
// present when descending.
package ordering
