// cmd/seeder/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/stockledger/internal/adapters/db"
	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/services"
	"github.com/ammerola/stockledger/internal/pkg/config"
	"github.com/ammerola/stockledger/internal/pkg/logger"
)

// SeedFile describes a tenant catalog and the movements to replay against it
type SeedFile struct {
	TenantID   int64         `json:"tenant_id"`
	Categories []string      `json:"categories"`
	Sizes      []string      `json:"sizes"`
	Colors     []SeedColor   `json:"colors"`
	Products   []SeedProduct `json:"products"`
}

type SeedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type SeedProduct struct {
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Variants []SeedVariant `json:"variants"`
}

type SeedVariant struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Stock     []SeedStock     `json:"stock"`
}

// SeedStock is one key of a variant. Empty size or color means untracked.
type SeedStock struct {
	Size         string `json:"size"`
	Color        string `json:"color"`
	In           int    `json:"in"`
	Out          int    `json:"out"`
	Adjust       int    `json:"adjust"`
	ReorderLevel *int   `json:"reorder_level"`
}

var defaultSeed = SeedFile{
	TenantID:   1,
	Categories: []string{"Apparel", "Accessories"},
	Sizes:      []string{"S", "M", "L"},
	Colors:     []SeedColor{{Name: "Black", Hex: "#000000"}, {Name: "Navy", Hex: "#1F2A44"}},
	Products: []SeedProduct{
		{
			Name:     "Crew Tee",
			Category: "Apparel",
			Variants: []SeedVariant{{
				Name:      "Classic",
				Price:     decimal.RequireFromString("24.00"),
				CostPrice: decimal.RequireFromString("8.50"),
				Stock: []SeedStock{
					{Size: "S", Color: "Black", In: 30, Out: 12, ReorderLevel: intPtr(5)},
					{Size: "M", Color: "Black", In: 40, Out: 37, ReorderLevel: intPtr(5)},
					{Size: "L", Color: "Navy", In: 15, Out: 4, Adjust: -2},
				},
			}},
		},
		{
			Name:     "Canvas Tote",
			Category: "Accessories",
			Variants: []SeedVariant{{
				Name:      "Natural",
				Price:     decimal.RequireFromString("18.00"),
				CostPrice: decimal.RequireFromString("6.00"),
				Stock: []SeedStock{
					{In: 10, Out: 5, Adjust: -3, ReorderLevel: intPtr(3)},
				},
			}},
		},
	},
}

func intPtr(v int) *int { return &v }

func main() {
	var (
		seedFile = flag.String("file", "", "JSON seed file (built-in demo catalog when empty)")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Validate the seed file without modifying the database")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "json")

	seed, err := loadSeed(*seedFile)
	if err != nil {
		slogger.Error("failed to load seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := seed.Validate(); err != nil {
		slogger.Error("invalid seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRun {
		fmt.Printf("[DRY RUN] seed file is valid: %d products for tenant %d\n", len(seed.Products), seed.TenantID)
		return
	}

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     4,
		MinConnections:     1,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	seeder := newSeeder(database, slogger)
	summary, err := seeder.Run(ctx, seed)
	if err != nil {
		slogger.Error("seed operation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("SEEDING OPERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Variants created:   %d\n", summary.Variants)
	fmt.Printf("Events recorded:    %d\n", summary.Events)
	fmt.Printf("Thresholds set:     %d\n", summary.Thresholds)
	fmt.Printf("Elapsed:            %s\n", summary.Elapsed.Round(time.Millisecond))

	slogger.Info("seed operation completed",
		slog.Int64("tenant_id", seed.TenantID),
		slog.Int("variants", summary.Variants),
		slog.Int("events", summary.Events))
}

func loadSeed(path string) (*SeedFile, error) {
	if path == "" {
		seed := defaultSeed
		return &seed, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &seed, nil
}

// Validate checks references between the sections of the file
func (s *SeedFile) Validate() error {
	if s.TenantID <= 0 {
		return errors.New("tenant_id must be positive")
	}

	categories := toSet(s.Categories)
	sizes := toSet(s.Sizes)
	colors := make(map[string]struct{}, len(s.Colors))
	for _, c := range s.Colors {
		colors[c.Name] = struct{}{}
	}

	for _, p := range s.Products {
		if p.Category != "" {
			if _, ok := categories[p.Category]; !ok {
				return fmt.Errorf("product %q references unknown category %q", p.Name, p.Category)
			}
		}
		for _, v := range p.Variants {
			for _, st := range v.Stock {
				if _, ok := sizes[st.Size]; st.Size != "" && !ok {
					return fmt.Errorf("variant %q references unknown size %q", v.Name, st.Size)
				}
				if _, ok := colors[st.Color]; st.Color != "" && !ok {
					return fmt.Errorf("variant %q references unknown color %q", v.Name, st.Color)
				}
				if st.In < 0 || st.Out < 0 {
					return fmt.Errorf("variant %q: in and out cannot be negative", v.Name)
				}
			}
		}
	}
	return nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

type seedSummary struct {
	Variants   int
	Events     int
	Thresholds int
	Elapsed    time.Duration
}

type seeder struct {
	catalog   *db.CatalogRepository
	movements *services.MovementService
	inventory *services.InventoryService
	logger    *slog.Logger
}

func newSeeder(database *db.Database, logger *slog.Logger) *seeder {
	inflow := db.NewInflowRepository(database, logger)
	outflow := db.NewOutflowRepository(database, logger)
	adjustments := db.NewAdjustmentRepository(database, logger)
	resolver := db.NewDimensionRepository(database, logger)

	aggregator := services.NewStockAggregator(inflow, outflow, adjustments, database, logger)
	return &seeder{
		catalog:   db.NewCatalogRepository(database, logger),
		movements: services.NewMovementService(inflow, outflow, adjustments, resolver, nil, logger),
		inventory: services.NewInventoryService(aggregator, db.NewThresholdRepository(database, logger), resolver, nil, logger),
		logger:    logger,
	}
}

// Run creates the catalog rows and replays each key's movements through the services
func (s *seeder) Run(ctx context.Context, seed *SeedFile) (*seedSummary, error) {
	start := time.Now()
	summary := &seedSummary{}
	tenant := seed.TenantID

	categoryIDs := make(map[string]int64, len(seed.Categories))
	for _, name := range seed.Categories {
		id, err := s.catalog.CreateCategory(ctx, name, tenant)
		if err != nil {
			return nil, err
		}
		categoryIDs[name] = id
	}

	sizeIDs := make(map[string]int64, len(seed.Sizes))
	for _, name := range seed.Sizes {
		id, err := s.catalog.CreateSize(ctx, name)
		if err != nil {
			return nil, err
		}
		sizeIDs[name] = id
	}

	colorIDs := make(map[string]int64, len(seed.Colors))
	for _, c := range seed.Colors {
		id, err := s.catalog.CreateColor(ctx, c.Name, c.Hex)
		if err != nil {
			return nil, err
		}
		colorIDs[c.Name] = id
	}

	for _, p := range seed.Products {
		product := db.NewProduct{Name: p.Name, OwnerID: tenant}
		if id, ok := categoryIDs[p.Category]; ok {
			product.CategoryID = &id
		}
		productID, err := s.catalog.CreateProduct(ctx, product)
		if err != nil {
			return nil, err
		}

		for _, v := range p.Variants {
			cost := v.CostPrice
			variantID, err := s.catalog.CreateVariant(ctx, db.NewVariant{
				ProductID: productID,
				Name:      v.Name,
				Price:     v.Price,
				CostPrice: &cost,
				OwnerID:   tenant,
			})
			if err != nil {
				return nil, err
			}
			summary.Variants++

			for _, st := range v.Stock {
				key := domain.StockKey{
					VariantID: variantID,
					SizeID:    dimension(sizeIDs, st.Size),
					ColorID:   dimension(colorIDs, st.Color),
				}
				events, thresholds, err := s.seedKey(ctx, tenant, key, cost, st)
				if err != nil {
					return nil, fmt.Errorf("failed to seed %s: %w", key, err)
				}
				summary.Events += events
				summary.Thresholds += thresholds
			}
		}
	}

	summary.Elapsed = time.Since(start)
	return summary, nil
}

func (s *seeder) seedKey(ctx context.Context, tenant int64, key domain.StockKey, cost decimal.Decimal,
	st SeedStock) (events, thresholds int, err error) {
	movement := func(qty int) domain.Movement {
		return domain.Movement{Key: key, Quantity: qty, ActorUserID: tenant}
	}

	if st.In > 0 {
		if _, err := s.movements.RecordInflow(ctx, tenant, &domain.InflowEvent{Movement: movement(st.In), UnitCost: cost}); err != nil {
			return events, thresholds, err
		}
		events++
	}

	if st.Out > 0 {
		reason := "seed sale"
		if _, err := s.movements.RecordOutflow(ctx, tenant, &domain.OutflowEvent{Movement: movement(st.Out), Reason: &reason}); err != nil {
			return events, thresholds, err
		}
		events++
	}

	if st.Adjust != 0 {
		direction, qty := domain.DirectionIncrease, st.Adjust
		if qty < 0 {
			direction, qty = domain.DirectionDecrease, -qty
		}
		reason := "seed count correction"
		adj := &domain.AdjustmentEvent{Movement: movement(qty), Direction: direction, Reason: &reason}
		if _, err := s.movements.RecordAdjustment(ctx, tenant, adj); err != nil {
			return events, thresholds, err
		}
		events++
	}

	if st.ReorderLevel != nil {
		if _, err := s.inventory.UpdateReorderLevel(ctx, tenant, tenant, key, *st.ReorderLevel); err != nil {
			return events, thresholds, err
		}
		thresholds++
	}

	return events, thresholds, nil
}

func dimension(ids map[string]int64, name string) domain.DimensionID {
	if id, ok := ids[name]; ok {
		return domain.Tracked(id)
	}
	return domain.Untracked()
}
