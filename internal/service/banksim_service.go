package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/banksim"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
	"github.com/vivendahub/Property-Sales-Backend/internal/repository"
)

// BankSimService manages the bank simulator integration: portal credentials
// are fernet-encrypted at rest and only decrypted for the outbound call.
type BankSimService struct {
	banksimRepo *repository.BankSimRepository
	client      *banksim.Client
	key         *fernet.Key
}

// NewBankSimService creates a new BankSimService. The fernet key must be a
// base64-encoded 32-byte key; an empty key disables credential storage.
func NewBankSimService(banksimRepo *repository.BankSimRepository, client *banksim.Client, fernetKey string) (*BankSimService, error) {
	s := &BankSimService{
		banksimRepo: banksimRepo,
		client:      client,
	}
	if fernetKey != "" {
		key, err := fernet.DecodeKey(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		s.key = key
	}
	return s, nil
}

// GetConfig returns the stored configuration with credentials still encrypted.
// Handlers expose only the base URL and enabled flag.
func (s *BankSimService) GetConfig() (model.BankSimConfig, error) {
	return s.banksimRepo.GetConfig()
}

// SaveConfig encrypts the portal credentials and stores the configuration.
func (s *BankSimService) SaveConfig(req request.SaveBankSimConfigRequest) (model.BankSimConfig, error) {
	if s.key == nil {
		return model.BankSimConfig{}, fmt.Errorf("credential encryption key not configured")
	}

	user, err := fernet.EncryptAndSign([]byte(req.PortalUser), s.key)
	if err != nil {
		return model.BankSimConfig{}, fmt.Errorf("failed to encrypt portal user: %w", err)
	}
	secret, err := fernet.EncryptAndSign([]byte(req.PortalSecret), s.key)
	if err != nil {
		return model.BankSimConfig{}, fmt.Errorf("failed to encrypt portal secret: %w", err)
	}

	c := model.BankSimConfig{
		ID:           uuid.New().String(),
		BaseURL:      req.BaseURL,
		PortalUser:   string(user),
		PortalSecret: string(secret),
		Enabled:      req.Enabled,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.banksimRepo.SaveConfig(c); err != nil {
		return model.BankSimConfig{}, err
	}
	return c, nil
}

// Simulate requests a financing simulation from the configured portal.
func (s *BankSimService) Simulate(ctx context.Context, req request.BankSimulateRequest) (banksim.SimulationResult, error) {
	c, err := s.banksimRepo.GetConfig()
	if err != nil {
		return banksim.SimulationResult{}, err
	}
	if !c.Enabled {
		return banksim.SimulationResult{}, apperrors.ErrBankSimDisabled
	}
	if s.key == nil {
		return banksim.SimulationResult{}, fmt.Errorf("credential encryption key not configured")
	}

	user := fernet.VerifyAndDecrypt([]byte(c.PortalUser), 0, []*fernet.Key{s.key})
	secret := fernet.VerifyAndDecrypt([]byte(c.PortalSecret), 0, []*fernet.Key{s.key})
	if user == nil || secret == nil {
		return banksim.SimulationResult{}, fmt.Errorf("failed to decrypt portal credentials")
	}

	client := s.client
	if c.BaseURL != "" {
		client = banksim.NewClient(c.BaseURL)
	}

	return client.Simulate(ctx, string(user), string(secret), banksim.SimulationRequest{
		BuyerDocument:    req.BuyerDocument,
		GrossIncome:      req.GrossIncome,
		PropertyValue:    req.PropertyValue,
		ParticipantCount: req.ParticipantCount,
		BirthDate:        req.BirthDate,
	})
}
