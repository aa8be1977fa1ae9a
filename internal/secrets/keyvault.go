package secrets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
)

// KeyVaultConfig configures a KeyVaultProvider.
type KeyVaultConfig struct {
	// VaultName is the short Key Vault name; the URL becomes
	// https://<name>.vault.azure.net/.
	VaultName string
	// ManagedIdentityClientID selects a user-assigned managed identity.
	// Empty means the default credential chain.
	ManagedIdentityClientID string
}

// KeyVaultProvider reads secrets from Azure Key Vault using the ambient
// Azure credential chain (managed identity in production, developer
// credentials locally).
type KeyVaultProvider struct {
	client *azsecrets.Client
}

func NewKeyVaultProvider(cfg KeyVaultConfig) (*KeyVaultProvider, error) {
	if cfg.VaultName == "" {
		return nil, errors.New("secrets: vault name is required")
	}

	var (
		cred azcore.TokenCredential
		err  error
	)
	if cfg.ManagedIdentityClientID != "" {
		cred, err = azidentity.NewManagedIdentityCredential(&azidentity.ManagedIdentityCredentialOptions{
			ID: azidentity.ClientID(cfg.ManagedIdentityClientID),
		})
	} else {
		cred, err = azidentity.NewDefaultAzureCredential(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("secrets: building credential: %w", err)
	}

	vaultURL := fmt.Sprintf("https://%s.vault.azure.net/", cfg.VaultName)
	client, err := azsecrets.NewClient(vaultURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("secrets: creating key vault client: %w", err)
	}

	return &KeyVaultProvider{client: client}, nil
}

func (p *KeyVaultProvider) GetSecret(ctx context.Context, name string) (string, error) {
	// Empty version resolves the latest secret version.
	resp, err := p.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("key vault secret %q: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("retrieving secret %q: %w", name, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("key vault secret %q has no value: %w", name, ErrNotFound)
	}
	return *resp.Value, nil
}
