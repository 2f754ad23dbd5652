// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bloom provides an API for building and querying a classic fixed-size
Bloom filter.

A Bloom filter is a space-efficient probabilistic data structure that is used
to test set membership with a size-dependent false positive rate while
simultaneously preventing false negatives.  In other words, items that were
added to the filter will always match, but items that were never added will
also sometimes match with the false positive rate of the filter.

Filters are created with a fixed number of bit positions that never changes
for the life of the filter.  Adding an item sets the bits at the positions
derived from the item by NumHashFuncs independent hash functions over a single
shared bit array, and a membership test reports true only when all of the bits
for the item are set.  Since bits are only ever set and never cleared,
additions are idempotent, items can not be removed, and a test that reports
true for an added item will keep reporting true for it for the life of the
filter.

The false positive rate for a filter with m bit positions after n distinct
items have been added follows the well-known approximation (1 - e^(-kn/m))^k,
where k is NumHashFuncs.  The CalcFPRate function implements the approximation
so callers can choose a size appropriate for their expected number of items.
The filter itself never enforces a rate and will accept additions indefinitely
with a correspondingly degrading rate.

Filters are not safe for concurrent access.  Callers that share a filter
between goroutines must provide their own synchronization.

# Errors

The errors returned by this package are of type bloom.Error and have full
support for the standard library errors.Is and errors.As functions.  This
allows the caller to programmatically determine the specific error by checking
against the exported ErrorKind constants while still providing rich error
messages with contextual information.
*/
package bloom
