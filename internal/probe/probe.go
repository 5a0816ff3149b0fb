package probe

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/qntx/zcheck/internal/codec"
)

var ErrVersionUnavailable = errors.New("runtime version unavailable")

// compiled records, per backing module, the version zcheck was built
// against. These are the compile-time counterparts of the runtime query,
// like a library's version macro versus its version function.
// Must stay in sync with go.mod.
var compiled = map[string]string{
	"github.com/klauspost/compress": "v1.18.0",
	"github.com/ulikunitz/xz":       "v0.5.15",
	"github.com/golang/snappy":      "v1.0.0",
}

// QueryFunc reports a module's runtime version in numeric form,
// major*10000 + minor*100 + patch. Zero means the version could not be
// determined.
type QueryFunc func(module string) uint64

// Report holds one library's probe outcome.
type Report struct {
	Module   string
	Compiled string
	Runtime  uint64
}

// Modules returns the backing modules of all supported codecs, deduplicated,
// in codec declaration order.
func Modules() []string {
	seen := make(map[string]bool)
	var modules []string
	for _, c := range codec.All() {
		m := c.Module()
		if !seen[m] {
			seen[m] = true
			modules = append(modules, m)
		}
	}
	return modules
}

// Run probes one module with the given query. A zero runtime version is
// the sentinel for a library that cannot report itself and fails the
// probe; any positive value is reported exactly.
func Run(module string, query QueryFunc) (*Report, error) {
	ver, ok := compiled[module]
	if !ok {
		return nil, fmt.Errorf("unknown module %q", module)
	}

	runtimeVer := query(module)
	if runtimeVer == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVersionUnavailable, module)
	}

	return &Report{Module: module, Compiled: ver, Runtime: runtimeVer}, nil
}

// All probes every backing module. It returns the reports that succeeded
// and the first failure encountered, if any.
func All(query QueryFunc) ([]*Report, error) {
	var reports []*Report
	var firstErr error
	for _, m := range Modules() {
		r, err := Run(m, query)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		reports = append(reports, r)
	}
	return reports, firstErr
}

// BuildInfoQuery resolves module versions from the binary's embedded
// build info.
func BuildInfoQuery(module string) uint64 {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return 0
	}
	for _, dep := range bi.Deps {
		if dep.Replace != nil {
			dep = dep.Replace
		}
		if dep.Path == module {
			return Numeric(dep.Version)
		}
	}
	return 0
}

// Numeric reduces a semver string to major*10000 + minor*100 + patch.
// Unparseable versions reduce to 0.
func Numeric(version string) uint64 {
	v := strings.TrimPrefix(version, "v")

	// Drop pre-release and build metadata.
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}

	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return 0
	}

	var n uint64
	for _, p := range parts {
		d, err := strconv.ParseUint(p, 10, 64)
		if err != nil || d > 99 {
			return 0
		}
		n = n*100 + d
	}
	return n
}
