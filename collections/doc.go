// Package collections provides the list and dictionary types a query
// converts into.
//
// List is an index-addressable slice wrapper whose searches use strict
// equality. Dictionary keeps insertion order; setting an existing key
// replaces its value in place.
package collections
