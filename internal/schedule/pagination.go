package schedule

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`      // номер страницы (с 1)
	PageSize int   `json:"page_size"` // количество элементов на странице
	HasNext  bool  `json:"has_next"`
	HasPrev  bool  `json:"has_prev"`
	Total    int64 `json:"total"` // общее количество элементов
}

const defaultPageSize = 10

// NormalizePage приводит номер страницы и размер к допустимым значениям
// и возвращает offset для запроса в хранилище.
func NormalizePage(page, pageSize int) (int, int, int) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	return page, pageSize, (page - 1) * pageSize
}

// NewPage собирает страницу из уже отфильтрованных хранилищем элементов
// и общего количества.
func NewPage[T any](items []T, page, pageSize int, total int64) Page[T] {
	page, pageSize, offset := NormalizePage(page, pageSize)
	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		HasNext:  int64(offset+len(items)) < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}
