// Package kernel provides shared value objects for the dispatch domain model.
//
// The package currently contains the UUID value object used as the identity
// of every aggregate (partners, orders, assignment records). Wrapping the
// third-party uuid implementation keeps identity handling uniform across the
// domain and lets the zero value be detected as "not constructed".
package kernel
