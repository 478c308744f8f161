package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hashicorp/vault/api"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	VAULT_IMAGE      = "hashicorp/vault:1.20"
	VAULT_ROOT_TOKEN = "root-token"
	VAULT_MOUNT_PATH = "secret"
	VAULT_SECRET     = "moneypilot"
)

// InitVaultContainer starts a Vault dev server, writes the secret values and
// points VAULT_ADDR at it.
type InitVaultContainer struct {
	Secrets   map[string]any
	container testcontainers.Container
}

func (i *InitVaultContainer) Initialize(ctx context.Context) (context.Context, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        VAULT_IMAGE,
			ExposedPorts: []string{"8200/tcp"},
			Env: map[string]string{
				"VAULT_DEV_ROOT_TOKEN_ID":  VAULT_ROOT_TOKEN,
				"VAULT_DEV_LISTEN_ADDRESS": "0.0.0.0:8200",
			},
			WaitingFor: wait.ForLog("Vault server started!").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to start vault container: %w", err)
	}
	i.container = c

	addr, err := c.PortEndpoint(ctx, "8200/tcp", "http")
	if err != nil {
		return ctx, err
	}

	cfg := api.DefaultConfig()
	cfg.Address = addr
	client, err := api.NewClient(cfg)
	if err != nil {
		return ctx, err
	}
	client.SetToken(VAULT_ROOT_TOKEN)
	if _, err := client.KVv2(VAULT_MOUNT_PATH).Put(ctx, VAULT_SECRET, i.Secrets); err != nil {
		return ctx, fmt.Errorf("failed to write vault secret: %w", err)
	}

	os.Setenv("VAULT_ADDR", addr) //nolint:errcheck
	return ctx, nil
}

func (i InitVaultContainer) Close() {
	os.Unsetenv("VAULT_ADDR") //nolint:errcheck
	if i.container != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := i.container.Terminate(cancelCtx); err != nil {
			log.Printf("failed to stop vault container: %v", err)
		}
	}
}
