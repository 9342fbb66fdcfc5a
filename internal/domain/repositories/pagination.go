package repositories

// Pagination parametriza listagens administrativas
type Pagination struct {
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}

// Normalize aplica os limites padrão de paginação
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	return p
}

// Offset calcula o deslocamento da página corrente
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
