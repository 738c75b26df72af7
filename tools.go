//go:build tools
// +build tools

package tools

// Pins the lint and benchmark tools in go.mod:
//
//	go run github.com/golangci/golangci-lint/cmd/golangci-lint run ./...
//	go test -run '^$' -bench . -count 10 ./benchmarks/game > new.txt
//	go run golang.org/x/perf/cmd/benchstat old.txt new.txt

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "golang.org/x/perf/cmd/benchstat"
)
