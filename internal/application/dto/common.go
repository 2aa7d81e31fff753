package dto

import "math"

// DevicePageSize tamaño fijo de página del listado de equipos.
const DevicePageSize = 20

// DevicePageQuery parámetros del listado de equipos (?page=&status=&standort_typ=).
type DevicePageQuery struct {
	Page     int    `query:"page"`
	Status   string `query:"status"`
	Location string `query:"standort_typ"`
}

// MaxDevicePage página más alta cuyo skip cabe en un int.
const MaxDevicePage = math.MaxInt/DevicePageSize + 1

// Normalize aplica los valores por defecto: página 1, como mucho MaxDevicePage.
func (q *DevicePageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Page > MaxDevicePage {
		q.Page = MaxDevicePage
	}
}

// Skip desplazamiento para el backend: (page-1)*20.
func (q DevicePageQuery) Skip() int {
	return (q.Page - 1) * DevicePageSize
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
	Pages    int `json:"pages"`
}

// NewPageResponse calcula el número de páginas (mínimo 1).
func NewPageResponse(page, total int) PageResponse {
	pages := (total + DevicePageSize - 1) / DevicePageSize
	if pages < 1 {
		pages = 1
	}
	return PageResponse{Page: page, PageSize: DevicePageSize, Total: total, Pages: pages}
}

// HasPrev / HasNext para la paginación de la plantilla.
func (p PageResponse) HasPrev() bool { return p.Page > 1 }
func (p PageResponse) HasNext() bool { return p.Page < p.Pages }

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
