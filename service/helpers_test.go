package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
)

var errBoom = errors.New("boom")

// fakeSource serves in-memory fixtures and counts how often each is fetched
type fakeSource struct {
	mu          sync.Mutex
	contracts   []model.Contract
	details     map[string]model.ContractDetail
	contractErr error
	detailErr   error
	listCalls   int
	detailCalls int
}

func (f *fakeSource) Contracts(ctx context.Context) ([]model.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.contractErr != nil {
		return nil, f.contractErr
	}
	return f.contracts, nil
}

func (f *fakeSource) Details(ctx context.Context) (map[string]model.ContractDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls++
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.details, nil
}

// fakeObjectStore records uploaded objects in memory
type fakeObjectStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	uploadErr error
	deleted   []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjectStore) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = data
	f.types[objectName] = contentType
	return nil
}

func (f *fakeObjectStore) GetPresignedURL(ctx context.Context, objectName string) (string, error) {
	return "https://objects.test/" + objectName, nil
}

func (f *fakeObjectStore) DeleteFile(ctx context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectName)
	f.deleted = append(f.deleted, objectName)
	return nil
}

func (f *fakeObjectStore) ReadObject(ctx context.Context, objectName string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[objectName]
	if !ok {
		return nil, errors.New("no such key: " + objectName)
	}
	return data, nil
}

func contract(id, name, parties, status, risk string, expiry model.Date) model.Contract {
	return model.Contract{
		ID:      id,
		Name:    name,
		Parties: parties,
		Status:  status,
		Risk:    risk,
		Start:   model.NewDate(2023, time.January, 1),
		Expiry:  expiry,
	}
}

// sampleContracts is a small portfolio; asOf for date tests is 2025-06-01
func sampleContracts() []model.Contract {
	return []model.Contract{
		contract("c1", "Acme Corp Master Services", "Acme Corp & Initech", model.StatusActive, model.RiskHigh, model.NewDate(2025, time.June, 15)),
		contract("c2", "Globex Supply Agreement", "Globex & Umbrella", model.StatusExpired, model.RiskLow, model.NewDate(2025, time.May, 1)),
		contract("c3", "Office Lease", "Hooli Realty & ACME Holdings", model.StatusRenewalDue, model.RiskMedium, model.NewDate(2025, time.July, 1)),
		contract("c4", "Data Processing Addendum", "Initech & Vandelay", model.StatusActive, model.RiskLow, model.NewDate(2026, time.January, 31)),
		contract("c5", "Consulting SOW", "Vandelay Industries", model.StatusActive, model.RiskHigh, model.NewDate(2025, time.June, 1)),
	}
}

func ids(contracts []model.Contract) []string {
	out := make([]string, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, c.ID)
	}
	return out
}
