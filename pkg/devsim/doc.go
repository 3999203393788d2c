// Package devsim ties the capability registry and the profile override
// engine together behind the query surface an application sees. A
// Simulator wraps a Driver, snapshots each physical device's
// capabilities at instance creation, applies the configured profile to
// the snapshots, and answers capability queries from them. Devices the
// simulator has never seen fall through to the wrapped driver.
package devsim
