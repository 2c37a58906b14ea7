// Package benchmark provides performance benchmarks for postmask.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run only the scan benchmarks over larger posts:
//
//	go test -bench=BenchmarkScan -benchmem -benchtime=10s ./internal/tests/benchmark/...
//
// Compare results:
//
//	go test -bench=. -benchmem -count=5 ./internal/tests/benchmark/... | tee benchmark.txt
//	benchstat old.txt new.txt
package benchmark
