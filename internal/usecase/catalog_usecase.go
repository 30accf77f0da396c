package usecase

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/store"
)

const relatedItemsLimit = 3

// PriceFormatter renders an amount for display.
type PriceFormatter interface {
	Format(amount float64) string
}

type CatalogUsecase struct {
	repo     domain.CatalogRepository
	pageSize int
	prices   PriceFormatter
}

func NewCatalogUsecase(repo domain.CatalogRepository, pageSize int, prices PriceFormatter) *CatalogUsecase {
	if repo == nil {
		panic("usecase: NewCatalogUsecase requires a catalog repository")
	}
	if pageSize <= 0 {
		pageSize = 8
	}
	return &CatalogUsecase{
		repo:     repo,
		pageSize: pageSize,
		prices:   prices,
	}
}

func (u *CatalogUsecase) PageSize() int {
	return u.pageSize
}

// Browse runs the query engine over the catalog and projects the visitor's
// favorites onto the result. While the catalog is loading the page is empty
// and Loading is set.
func (u *CatalogUsecase) Browse(ctx context.Context, st *store.Store, q domain.CatalogQuery) domain.CatalogPage {
	if q.PageSize <= 0 {
		q.PageSize = u.pageSize
	}

	items, ok := u.repo.All(ctx)
	if !ok {
		return domain.CatalogPage{
			Items:      []domain.ItemView{},
			Pagination: domain.NewPagination(q.Page, q.PageSize, 0),
			Loading:    true,
		}
	}

	page, total := QueryCatalog(items, q)
	return domain.CatalogPage{
		Items:      projectItems(page, st.Favorites(), u.prices),
		Pagination: domain.NewPagination(q.Page, q.PageSize, total),
	}
}

// Detail returns the quick view for id with up to three related items from
// the same category.
func (u *CatalogUsecase) Detail(ctx context.Context, st *store.Store, id string) (*domain.ItemDetail, error) {
	item, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	all, _ := u.repo.All(ctx)

	related := make([]domain.Item, 0, relatedItemsLimit)
	for _, it := range all {
		if len(related) == relatedItemsLimit {
			break
		}
		if it.Category == item.Category && it.ID != item.ID {
			related = append(related, it)
		}
	}

	favorites := st.Favorites()
	return &domain.ItemDetail{
		Item:    projectItem(*item, favorites, u.prices),
		Related: projectItems(related, favorites, u.prices),
	}, nil
}

func projectItem(it domain.Item, favorites map[string]struct{}, prices PriceFormatter) domain.ItemView {
	_, fav := favorites[it.ID]
	view := domain.ItemView{Item: it, IsFavorited: fav}
	if prices != nil {
		view.FormattedPrice = prices.Format(it.Price)
	}
	return view
}

func projectItems(items []domain.Item, favorites map[string]struct{}, prices PriceFormatter) []domain.ItemView {
	views := make([]domain.ItemView, len(items))
	for i, it := range items {
		views[i] = projectItem(it, favorites, prices)
	}
	return views
}
