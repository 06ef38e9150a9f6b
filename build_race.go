//go:build race

package sysstats

const raceBuild = true
