package service

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
)

// FileFixtureSource reads the fixtures from a local directory
type FileFixtureSource struct {
	dir        string
	listFile   string
	detailFile string
}

func NewFileFixtureSource(cfg *config.FixturesConfig) *FileFixtureSource {
	return &FileFixtureSource{
		dir:        cfg.Dir,
		listFile:   cfg.ListFile,
		detailFile: cfg.DetailFile,
	}
}

func (s *FileFixtureSource) Contracts(ctx context.Context) ([]model.Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, s.listFile))
	if err != nil {
		return nil, err
	}
	return decodeContracts(data)
}

func (s *FileFixtureSource) Details(ctx context.Context) (map[string]model.ContractDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, s.detailFile))
	if err != nil {
		return nil, err
	}
	return decodeDetails(data)
}
