// Package branding centralizes user-facing product naming.
package branding

// AppName is the product name shown in page chrome and titles.
const AppName = "Reclaim.Space"
