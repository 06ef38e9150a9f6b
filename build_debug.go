//go:build debug

package sysstats

const debugBuild = true
