package service

import "reservashotel/internal/pkg/dates"

type CreateServiceRequest struct {
	ClientDocumentID string      `json:"documento_identidad" binding:"required"`
	Name             string      `json:"nombre_servicio" binding:"required"`
	Available        *bool       `json:"disponible" binding:"required"`
	Schedule         dates.Clock `json:"horario" binding:"required"`
	UnitPrice        float64     `json:"precio_unitario" binding:"required"`
	Promotions       string      `json:"promociones" binding:"required"`
	Extras           string      `json:"servicios_extra" binding:"required"`
	CustomOffers     string      `json:"ofertas_personalizadas" binding:"required"`
}

type UpdateServiceRequest struct {
	Name         string  `json:"nombre" binding:"required"`
	Available    *bool   `json:"disponible" binding:"required"`
	Price        float64 `json:"precio" binding:"required"`
	Promotions   string  `json:"promociones" binding:"required"`
	Extras       string  `json:"servicios_extra" binding:"required"`
	CustomOffers string  `json:"ofertas_personalizadas" binding:"required"`
}

type ListServicesQuery struct {
	Available *bool `form:"disponible"`
}
