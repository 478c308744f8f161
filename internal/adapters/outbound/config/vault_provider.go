package config

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from a HashiCorp Vault KV v2 secret.
// The secret is read once and cached; keys missing from it are reported as
// errors so that a composite provider falls back to the next source.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string

	mu     sync.Mutex
	values map[string]any
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The mountPath is the KV v2 mount (e.g., "secret") and secretPath the secret
// within it (e.g., "moneypilot").
func NewVaultProvider(server, token, mountPath, secretPath string) (*VaultProvider, error) {
	switch {
	case server == "":
		return nil, fmt.Errorf("server is required")
	case token == "":
		return nil, fmt.Errorf("token is required")
	case mountPath == "":
		return nil, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return nil, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Get retrieves a configuration value from the cached secret.
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	values, err := vp.load(ctx)
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}
	return strValue, nil
}

func (vp *VaultProvider) load(ctx context.Context) (map[string]any, error) {
	vp.mu.Lock()
	defer vp.mu.Unlock()

	if vp.values != nil {
		return vp.values, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.values = secret.Data
	return vp.values, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider layers Vault over the environment variables when VAULT_ADDR is set.
type InitVaultProvider struct {
	Logger     *slog.Logger `resolve:""`
	Server     string       `config:"VAULT_ADDR" default:"-"`
	Token      string       `config:"VAULT_TOKEN" default:"-"`
	MountPath  string       `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string       `config:"VAULT_SECRET_PATH" default:"moneypilot"`
}

// Initialize sets up the VaultProvider and registers it in a composite provider as the global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == UNSET {
		ivp.Logger.Debug("Vault provider disabled")
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, optional(ivp.Token), ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)
	ivp.Logger.Info("Vault provider enabled", "addr", ivp.Server, "secret", ivp.MountPath+"/"+ivp.SecretPath)

	return ctx, nil
}
