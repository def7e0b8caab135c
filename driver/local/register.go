package local

import "github.com/gobeaver/pathkit"

func init() {
	factory := func(cfg *pathkit.Config) (pathkit.Backend, error) {
		return New(), nil
	}
	pathkit.RegisterBackend(pathkit.Posix, factory)
	pathkit.RegisterBackend(pathkit.Windows, factory)
}
