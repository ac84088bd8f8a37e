package dto

type DepartamentoResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
