package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/vladislav25v/sales-bonus/internal/application/report"

// SellerPerformanceService builds the ranked seller bonus report.
// It keeps no state between calls and is safe for concurrent use.
type SellerPerformanceService struct {
	logger *zap.Logger
	tracer trace.Tracer
}

// NewSellerPerformanceService creates a new seller performance service
func NewSellerPerformanceService(logger *zap.Logger) *SellerPerformanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SellerPerformanceService{
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Analyze validates the input, aggregates purchase records per seller,
// ranks sellers by profit and returns one report row per seller.
// Either the full report or an error is returned, never a partial result.
func (s *SellerPerformanceService) Analyze(ctx context.Context, data *sales.Dataset, opts *sales.Options) ([]sales.SellerReport, error) {
	_, span := s.tracer.Start(ctx, "report.Analyze")
	defer span.End()

	log := s.logger.With(zap.String("run_id", uuid.New().String()))
	if spanCtx := span.SpanContext(); spanCtx.IsValid() {
		log = log.With(
			zap.String("trace_id", spanCtx.TraceID().String()),
			zap.String("span_id", spanCtx.SpanID().String()),
		)
	}

	start := time.Now()
	reports, err := analyze(data, opts, log)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("Sales report rejected", zap.Error(err))
		return nil, err
	}

	log.Info("Sales report computed",
		zap.Int("sellers", len(data.Sellers)),
		zap.Int("products", len(data.Products)),
		zap.Int("purchase_records", len(data.PurchaseRecords)),
		zap.Duration("duration", time.Since(start)),
	)
	return reports, nil
}

// AnalyzeSalesData runs the report pipeline without logging or tracing
func AnalyzeSalesData(data *sales.Dataset, opts *sales.Options) ([]sales.SellerReport, error) {
	return analyze(data, opts, zap.NewNop())
}

func analyze(data *sales.Dataset, opts *sales.Options, log *zap.Logger) ([]sales.SellerReport, error) {
	if err := validateInput(data, opts); err != nil {
		return nil, err
	}

	idx := buildIndex(data)
	log.Debug("Indexed dataset",
		zap.Int("sellers", len(idx.sellerByID)),
		zap.Int("products", len(idx.productBySKU)),
	)

	if err := aggregate(data.PurchaseRecords, idx, opts.Revenue); err != nil {
		return nil, err
	}
	log.Debug("Aggregated purchase records", zap.Int("purchase_records", len(data.PurchaseRecords)))

	ranked := rank(idx.sellers, opts.Bonus)
	return formatReport(ranked), nil
}
