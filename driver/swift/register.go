package swift

import (
	"context"
	"fmt"

	"github.com/ncw/swift/v2"

	"github.com/gobeaver/pathkit"
)

func init() {
	pathkit.RegisterBackend(pathkit.Swift, func(cfg *pathkit.Config) (pathkit.Backend, error) {
		conn, err := createConnection(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Swift connection: %w", err)
		}
		return New(conn), nil
	})
}

// createConnection authenticates a Swift connection from config
func createConnection(cfg *pathkit.Config) (*swift.Connection, error) {
	conn := &swift.Connection{
		UserName: cfg.SwiftUsername,
		ApiKey:   cfg.SwiftAPIKey,
		AuthUrl:  cfg.SwiftAuthURL,
		Tenant:   cfg.SwiftTenant,
		Region:   cfg.SwiftRegion,
	}
	if err := conn.Authenticate(context.Background()); err != nil {
		return nil, err
	}
	return conn, nil
}
