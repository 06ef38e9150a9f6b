//go:build tools

// Package tools pins the linter used on sysstats.
package tools

import _ "github.com/golangci/golangci-lint/cmd/golangci-lint"
