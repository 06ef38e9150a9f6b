//go:build !race

package sysstats

const raceBuild = false
