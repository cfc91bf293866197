package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Sathvikcoderr02/saas-contracts-dashboard/service"

var (
	// ErrFetchContracts covers transport failures, non-2xx responses and malformed list fixtures
	ErrFetchContracts = errors.New("failed to fetch contracts")
	// ErrFetchDetails is the detail-fixture counterpart of ErrFetchContracts
	ErrFetchDetails = errors.New("failed to fetch contract details")
	// ErrContractNotFound means the detail fixture loaded but has no entry for the id
	ErrContractNotFound = errors.New("contract not found")
)

// IsFetchError reports whether err is a retryable fixture fetch failure
func IsFetchError(err error) bool {
	return errors.Is(err, ErrFetchContracts) || errors.Is(err, ErrFetchDetails)
}

// ListParams are the inputs of one list-view query
type ListParams struct {
	Filter
	Page  int
	Limit int
}

// ExpiringContract is a contract in the expiring-soon set with its day count
type ExpiringContract struct {
	model.Contract
	DaysLeft int    `json:"days_left"`
	Label    string `json:"label"`
}

// Insights is the portfolio summary shown on the insights view
type Insights struct {
	AsOf         model.Date         `json:"as_of"`
	HorizonDays  int                `json:"horizon_days"`
	Risk         RiskStats          `json:"risk"`
	Status       StatusStats        `json:"status"`
	ExpiringSoon []ExpiringContract `json:"expiring_soon"`
}

// ContractService answers list, detail and insight queries from a FixtureSource.
// Nothing is cached: every call fetches the fixtures again.
type ContractService struct {
	source FixtureSource
	tracer trace.Tracer
}

func NewContractService(source FixtureSource) *ContractService {
	return &ContractService{
		source: source,
		tracer: otel.Tracer(tracerName),
	}
}

// All returns the full, unfiltered list fixture
func (s *ContractService) All(ctx context.Context) ([]model.Contract, error) {
	ctx, span := s.tracer.Start(ctx, "ContractService.All")
	defer span.End()

	contracts, err := s.source.Contracts(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFetchContracts, err)
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("contracts.count", len(contracts)))
	return contracts, nil
}

// List fetches the collection, applies the filter and returns the requested page
func (s *ContractService) List(ctx context.Context, p ListParams) (*Page, error) {
	ctx, span := s.tracer.Start(ctx, "ContractService.List", trace.WithAttributes(
		attribute.String("filter.search", p.Search),
		attribute.String("filter.status", p.Status),
		attribute.String("filter.risk", p.Risk),
		attribute.Int("page", p.Page),
		attribute.Int("limit", p.Limit),
	))
	defer span.End()

	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Query(all, p.Filter)
	page := Paginate(filtered, p.Page, p.Limit)

	logger.Debug(ctx, "contracts queried",
		"total", len(all),
		"matched", page.Pagination.Total,
		"page", p.Page,
		"returned", len(page.Items),
	)
	return &page, nil
}

// Details returns the full detail fixture
func (s *ContractService) Details(ctx context.Context) (map[string]model.ContractDetail, error) {
	ctx, span := s.tracer.Start(ctx, "ContractService.Details")
	defer span.End()

	details, err := s.source.Details(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFetchDetails, err)
		recordError(span, err)
		return nil, err
	}
	return details, nil
}

// Get returns one detail record. A missing id yields ErrContractNotFound,
// never a fetch error.
func (s *ContractService) Get(ctx context.Context, id string) (*model.ContractDetail, error) {
	ctx, span := s.tracer.Start(ctx, "ContractService.Get", trace.WithAttributes(
		attribute.String("contract.id", id),
	))
	defer span.End()

	details, err := s.Details(ctx)
	if err != nil {
		return nil, err
	}

	detail, ok := details[id]
	if !ok {
		span.SetAttributes(attribute.Bool("contract.found", false))
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, id)
	}
	if detail.ID == "" {
		detail.ID = id
	}
	return &detail, nil
}

// Insights computes the portfolio summary over the unfiltered collection
func (s *ContractService) Insights(ctx context.Context, asOf time.Time, horizonDays int) (*Insights, error) {
	ctx, span := s.tracer.Start(ctx, "ContractService.Insights", trace.WithAttributes(
		attribute.Int("horizon_days", horizonDays),
	))
	defer span.End()

	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(all, asOf, horizonDays), nil
}

// Summarize builds Insights from an already loaded collection
func Summarize(collection []model.Contract, asOf time.Time, horizonDays int) *Insights {
	soon := ExpiringSoon(collection, asOf, horizonDays)
	expiring := make([]ExpiringContract, 0, len(soon))
	for _, c := range soon {
		days := DaysUntilExpiry(c.Expiry, asOf)
		expiring = append(expiring, ExpiringContract{
			Contract: c,
			DaysLeft: days,
			Label:    ExpiryLabel(days),
		})
	}

	asOfUTC := asOf.UTC()
	return &Insights{
		AsOf:         model.NewDate(asOfUTC.Year(), asOfUTC.Month(), asOfUTC.Day()),
		HorizonDays:  horizonDays,
		Risk:         ComputeRiskStats(collection),
		Status:       ComputeStatusStats(collection),
		ExpiringSoon: expiring,
	}
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
