// Package catalog implements the product catalog application service: the
// operations the screens invoke, and the push-based collection streams they
// subscribe to.
package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kuyka38/mijawharati-sub000/domain/catalog"
	"github.com/kuyka38/mijawharati-sub000/domain/shared"
	"github.com/kuyka38/mijawharati-sub000/pkg/logger"
)

// ImageStore is the slice of the asset store the catalog needs: materialize
// an uploaded image before the record exists, reclaim it after the record is
// gone.
type ImageStore interface {
	Save(ctx context.Context, sourcePath string) (string, error)
	Delete(path string)
}

// ProductView 展示层使用的商品快照 DTO
type ProductView struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Phone     string          `json:"phone"`
	ImageRef  string          `json:"image_ref,omitempty"`
	Favorite  bool            `json:"favorite"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Service Product catalog application service
//
// Mutations are serialized by a single mutex: the catalog is driven from one
// coordinating context, and serialization gives stream subscribers a
// coherent order of snapshots (a delete issued after an add is always
// observed after the add's effect).
type Service struct {
	repo   catalog.Repository
	images ImageStore

	mu        sync.Mutex
	all       *shared.Stream[ProductView]
	favorites *shared.Stream[ProductView]
}

func NewService(repo catalog.Repository, images ImageStore) *Service {
	return &Service{
		repo:      repo,
		images:    images,
		all:       shared.NewStream[ProductView](),
		favorites: shared.NewStream[ProductView](),
	}
}

// AddProductRequest Create product request DTO
type AddProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Phone       string          `json:"phone"`
	ImageSource string          `json:"image_source"`
}

// Add validates the request, materializes the image asset, then inserts the
// product with favorite=false. Validation failures surface before any
// mutation; an image storage failure aborts the add with no product record
// created; an insert failure reclaims the just-stored asset so no orphan
// file survives a failed add.
func (s *Service) Add(ctx context.Context, req AddProductRequest) (*ProductView, error) {
	p, err := catalog.NewProduct(req.Name, req.Price, req.Phone, "")
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	imageRef, err := s.images.Save(ctx, req.ImageSource)
	if err != nil {
		return nil, err
	}
	p.ChangeImage(imageRef)

	if err := s.repo.Insert(ctx, p); err != nil {
		s.images.Delete(imageRef)
		return nil, err
	}

	logger.Info("Product added",
		zap.Int64("id", p.ID()),
		zap.String("name", p.Name()))

	s.refresh(ctx)
	view := viewOf(p)
	return &view, nil
}

// UpdateProductRequest Update product request DTO
// NewImageSource, when non-empty, is stored and replaces the image
// reference. The previous asset is deliberately NOT deleted here: only
// product deletion reclaims assets. Callers that care about the orphaned
// file must delete it themselves.
type UpdateProductRequest struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Phone          string          `json:"phone"`
	NewImageSource string          `json:"new_image_source,omitempty"`
}

// Update replaces the stored record matching the identity. Not-found and
// validation failures leave both the record and the asset directory
// untouched; a storage failure after a replacement image was stored reclaims
// that image, so a failed update never leaves an orphan asset either.
func (s *Service) Update(ctx context.Context, req UpdateProductRequest) (*ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := p.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := p.ChangePrice(req.Price); err != nil {
		return nil, err
	}
	if err := p.ChangePhone(req.Phone); err != nil {
		return nil, err
	}

	var newImageRef string
	if req.NewImageSource != "" {
		imageRef, err := s.images.Save(ctx, req.NewImageSource)
		if err != nil {
			return nil, err
		}
		p.ChangeImage(imageRef)
		newImageRef = imageRef
	}

	if err := s.repo.Update(ctx, p); err != nil {
		// The record still holds the old reference, so the freshly
		// stored asset belongs to nothing; reclaim it like a failed add.
		if newImageRef != "" {
			s.images.Delete(newImageRef)
		}
		return nil, err
	}

	s.refresh(ctx)
	view := viewOf(p)
	return &view, nil
}

// Delete removes the record first, then reclaims its image asset. Asset
// cleanup is fire-and-forget: the deletion is considered successful even if
// removing the file fails.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if p.HasImage() {
		s.images.Delete(p.ImageRef())
	}

	logger.Info("Product deleted", zap.Int64("id", id))

	s.refresh(ctx)
	return nil
}

// ToggleFavorite flips the favorite flag against the persisted state, so
// repeated toggles always land on the opposite of the prior value.
func (s *Service) ToggleFavorite(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.SetFavorite(ctx, id, !p.IsFavorite()); err != nil {
		return err
	}

	s.refresh(ctx)
	return nil
}

// ListAll returns the current catalog contents in persisted order.
func (s *Service) ListAll(ctx context.Context) ([]ProductView, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return viewsOf(products), nil
}

// ListFavorites returns the favorite subset in persisted order.
func (s *Service) ListFavorites(ctx context.Context) ([]ProductView, error) {
	products, err := s.repo.FindFavorites(ctx)
	if err != nil {
		return nil, err
	}
	return viewsOf(products), nil
}

// WatchAll subscribes to the full catalog stream. The current snapshot is
// delivered immediately; every successful mutation pushes a fresh one.
func (s *Service) WatchAll(ctx context.Context) (<-chan []ProductView, func(), error) {
	ch, cancel := s.all.Subscribe(ctx)
	if err := s.prime(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	return ch, cancel, nil
}

// WatchFavorites subscribes to the favorites stream: a filtered view over
// the same underlying collection.
func (s *Service) WatchFavorites(ctx context.Context) (<-chan []ProductView, func(), error) {
	ch, cancel := s.favorites.Subscribe(ctx)
	if err := s.prime(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	return ch, cancel, nil
}

// prime publishes an initial snapshot for subscribers arriving before the
// first mutation.
func (s *Service) prime(ctx context.Context) error {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	favorites, err := s.repo.FindFavorites(ctx)
	if err != nil {
		return err
	}
	s.all.Publish(viewsOf(all))
	s.favorites.Publish(viewsOf(favorites))
	return nil
}

// refresh pushes fresh snapshots after a successful mutation. A snapshot
// load failure only costs subscribers one update, so it is logged rather
// than failing the already-committed mutation.
func (s *Service) refresh(ctx context.Context) {
	if err := s.prime(ctx); err != nil {
		logger.Warn("Failed to publish catalog snapshot", zap.Error(err))
	}
}

func viewOf(p *catalog.Product) ProductView {
	return ProductView{
		ID:        p.ID(),
		Name:      p.Name(),
		Price:     p.Price(),
		Phone:     p.Phone(),
		ImageRef:  p.ImageRef(),
		Favorite:  p.IsFavorite(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func viewsOf(products []*catalog.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = viewOf(p)
	}
	return views
}
