package contract

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"
)

// ErrInterfaceNotFound is returned when no loaded package declares the interface.
var ErrInterfaceNotFound = errors.New("interface not found")

// Implementation is a concrete named type satisfying the inspected interface.
type Implementation struct {
	Name       string
	PkgPath    string
	ViaPointer bool // true if only *T (not T) satisfies the interface
	SourceFile string
}

// Report describes an interface and who can satisfy it.
type Report struct {
	Interface       string
	PkgPath         string
	Methods         []string
	Sealed          bool // declares at least one unexported method
	Implementations []Implementation
}

// Names returns the implementation type names in report order.
func (r *Report) Names() []string {
	names := make([]string, len(r.Implementations))
	for i, impl := range r.Implementations {
		names[i] = impl.Name
	}
	return names
}

// Inspect loads the Go packages under dir and reports on the interface
// named ifaceName. The first package declaring it wins.
func Inspect(ctx context.Context, dir, ifaceName string, logger *slog.Logger) (*Report, error) {
	logger = logger.With("component", "contract")

	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:     dir,
		Context: ctx,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	logger.Info("packages loaded", "packages_count", len(pkgs))

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	var (
		report *Report
		iface  *types.Interface
	)
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		tn, ok := pkg.Types.Scope().Lookup(ifaceName).(*types.TypeName)
		if !ok {
			continue
		}
		it, ok := tn.Type().Underlying().(*types.Interface)
		if !ok {
			continue
		}
		iface = it
		report = &Report{Interface: ifaceName, PkgPath: pkg.PkgPath}
		for i := 0; i < it.NumMethods(); i++ {
			m := it.Method(i)
			report.Methods = append(report.Methods, m.Name())
			if !m.Exported() {
				report.Sealed = true
			}
		}
		break
	}
	if report == nil {
		return nil, fmt.Errorf("%w: %s", ErrInterfaceNotFound, ifaceName)
	}
	logger.Debug("found interface", "name", ifaceName, "package", report.PkgPath, "sealed", report.Sealed)

	if iface.NumMethods() == 0 {
		return report, nil
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}
			if _, isIface := named.Underlying().(*types.Interface); isIface {
				continue
			}

			impl := Implementation{
				Name:       tn.Name(),
				PkgPath:    pkg.PkgPath,
				SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), dir),
			}
			switch {
			case types.Implements(named, iface):
			case types.Implements(types.NewPointer(named), iface):
				impl.ViaPointer = true
			default:
				continue
			}
			logger.Debug("match found", "type", impl.Name, "via_pointer", impl.ViaPointer)
			report.Implementations = append(report.Implementations, impl)
		}
	}

	sort.Slice(report.Implementations, func(i, j int) bool {
		a, b := report.Implementations[i], report.Implementations[j]
		if a.PkgPath != b.PkgPath {
			return a.PkgPath < b.PkgPath
		}
		return a.Name < b.Name
	})

	logger.Info("inspection complete", "interface", ifaceName, "implementations", len(report.Implementations))
	return report, nil
}

// resolveSourceFile resolves a token position to a file path relative to root.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, root string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(root, position.Filename)
	if err != nil {
		return position.Filename
	}
	return rel
}
