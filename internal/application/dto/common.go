package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WarningDTO problema no fatal reportado junto a una respuesta exitosa.
type WarningDTO struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DocumentWarningDTO documento omitido de un listado o reporte por no poder
// interpretarse. No cuenta en ningún total.
type DocumentWarningDTO struct {
	ProductID string `json:"product_id"`
	Field     string `json:"field"`
	Message   string `json:"message"`
}
