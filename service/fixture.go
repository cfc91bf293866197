package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
)

// FixtureSource loads the two static contract fixtures. Implementations must
// read fresh data on every call.
type FixtureSource interface {
	// Contracts returns the list fixture, a JSON array of contract summaries
	Contracts(ctx context.Context) ([]model.Contract, error)
	// Details returns the detail fixture, a JSON object keyed by contract id
	Details(ctx context.Context) (map[string]model.ContractDetail, error)
}

func decodeContracts(data []byte) ([]model.Contract, error) {
	var contracts []model.Contract
	if err := json.Unmarshal(data, &contracts); err != nil {
		return nil, fmt.Errorf("failed to parse contracts fixture: %w", err)
	}
	if contracts == nil {
		contracts = []model.Contract{}
	}
	return contracts, nil
}

func decodeDetails(data []byte) (map[string]model.ContractDetail, error) {
	var details map[string]model.ContractDetail
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("failed to parse contract details fixture: %w", err)
	}
	if details == nil {
		details = map[string]model.ContractDetail{}
	}
	return details, nil
}
