// Package bridge mediates property access between a script value space and
// host-owned records.
//
// The bridge itself is stateless: every read goes to the host record
// directly and every write commits in place, so there is no cache to
// invalidate and no bridge-level locking. A Handle is an opaque reference
// the host hands to a script runtime; the host creates it, releases it,
// and remains the single source of truth for the record behind it.
//
// Each property crossing the boundary is checked against an explicit
// descriptor table before any access, and converted through a fixed,
// bijective-per-type codec. The bridge never creates properties on the
// host record.
package bridge
