// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo     repository.ProductRepository
	debounce        time.Duration
	suggestionLimit int
	defaultMaxPrice float64
	logger          *slog.Logger

	mu       sync.Mutex
	sessions map[string]*searchState
}

// searchState is one typeahead session. Pending holds the latest text,
// applied the text whose debounce window has passed.
type searchState struct {
	mu        sync.Mutex
	pending   string
	applied   string
	debouncer *util.Debouncer
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	catalogCfg := params.Config.Catalog

	return &catalogService{
		productRepo:     params.ProductRepo,
		debounce:        catalogCfg.SearchDebounce,
		suggestionLimit: catalogCfg.SuggestionLimit,
		defaultMaxPrice: catalogCfg.DefaultMaxPrice,
		logger:          params.Logger,
		sessions:        make(map[string]*searchState),
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Browse loads the product list in one shot and applies narrowing, the
// price range, spec filters, search and sort on top of it.
func (srv *catalogService) Browse(ctx context.Context, input usecase.BrowseInput) (*usecase.BrowseOutput, error) {
	products, err := srv.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	if input.Category != "" {
		if input.Brand != "" {
			products = catalog.FilterByBrand(products, input.Category, input.Brand)
		} else {
			products = catalog.FilterByCategory(products, input.Category)
		}
	}

	// Brand and spec options come from the narrowed list so the filter
	// panel never offers a value that matches nothing.
	brands := catalog.Brands(products, input.Category)
	specs := catalog.AllSpecs(products)

	if input.Search != "" {
		products = catalog.SearchByTitle(products, input.Search)
	}

	maxPrice := input.MaxPrice
	if maxPrice <= 0 {
		maxPrice = srv.defaultMaxPrice
	}

	sortMode, _ := catalog.ParseSortMode(input.Sort)
	products = catalog.Apply(products, catalog.PriceRange{Min: input.MinPrice, Max: maxPrice}, input.SpecFilter, sortMode)

	return &usecase.BrowseOutput{
		Products: products,
		Brands:   brands,
		Specs:    specs,
		MaxPrice: srv.defaultMaxPrice,
	}, nil
}

// GetProduct loads a single product.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load product", slog.String("id", id), slog.Any("error", err))

		return nil, domainerrors.ErrProductsLoadFailed
	}

	return product, nil
}

// SetSearchText records the session's typeahead text and schedules the
// debounced application. Clearing the text applies immediately.
func (srv *catalogService) SetSearchText(_ context.Context, input usecase.SuggestInput) error {
	state := srv.session(input.SessionID)

	state.mu.Lock()
	state.pending = input.Query
	state.mu.Unlock()

	if strings.TrimSpace(input.Query) == "" {
		state.debouncer.Flush(func() {
			state.mu.Lock()
			state.applied = ""
			state.mu.Unlock()
		})

		return nil
	}

	state.debouncer.Do(func() {
		state.mu.Lock()
		state.applied = state.pending
		state.mu.Unlock()
	})

	return nil
}

// Suggestions returns the suggestions for the session's last applied query.
func (srv *catalogService) Suggestions(ctx context.Context, sessionID string) (*usecase.SuggestOutput, error) {
	state := srv.session(sessionID)

	state.mu.Lock()
	applied := state.applied
	state.mu.Unlock()

	if strings.TrimSpace(applied) == "" {
		return &usecase.SuggestOutput{Query: applied}, nil
	}

	products, err := srv.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.SuggestOutput{
		Query:    applied,
		Products: catalog.Suggest(products, applied, srv.suggestionLimit),
	}, nil
}

func (srv *catalogService) loadProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load products", slog.Any("error", err))

		return nil, domainerrors.ErrProductsLoadFailed
	}

	return products, nil
}

func (srv *catalogService) session(sessionID string) *searchState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	state, ok := srv.sessions[sessionID]
	if !ok {
		state = &searchState{debouncer: util.NewDebouncer(srv.debounce)}
		srv.sessions[sessionID] = state
	}

	return state
}
