package network

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

// Network is a throwaway bridge network shared by the containers of one
// integration suite.
type Network struct {
	network *testcontainers.DockerNetwork
}

func NewNetwork(ctx context.Context, projectName string) (*Network, error) {
	nw, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			"project": projectName,
			"purpose": "integration",
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create docker network for %s", projectName)
	}

	return &Network{network: nw}, nil
}

func (n *Network) Name() string {
	return n.network.Name
}

// Attach joins a container built by a testcontainers module to the network
// under the given aliases.
func (n *Network) Attach(aliases ...string) testcontainers.CustomizeRequestOption {
	return tcnetwork.WithNetwork(aliases, n.network)
}

func (n *Network) Remove(ctx context.Context) error {
	if err := n.network.Remove(ctx); err != nil {
		return errors.Wrapf(err, "failed to remove docker network %s", n.network.Name)
	}
	return nil
}
