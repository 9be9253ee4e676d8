package room

type CreateRoomRequest struct {
	Number       int     `json:"numero" binding:"required"`
	Type         string  `json:"tipo" binding:"required"`
	Description  string  `json:"descripcion" binding:"required"`
	Availability string  `json:"disponibilidad" binding:"required"`
	Features     string  `json:"caracteristicas" binding:"required"`
	Season       string  `json:"temporada" binding:"required"`
	Promotions   string  `json:"promociones_especiales" binding:"required"`
	NightlyPrice float64 `json:"precio_noche" binding:"required"`
}

type UpdateRoomRequest struct {
	Type         string  `json:"tipo" binding:"required"`
	Description  string  `json:"descripcion" binding:"required"`
	Availability string  `json:"disponibilidad" binding:"required"`
	NightlyPrice float64 `json:"precio_noche" binding:"required"`
}

type ListRoomsQuery struct {
	Type         *string  `form:"tipo"`
	MaxPrice     *float64 `form:"precio_maximo"`
	Availability *string  `form:"disponibilidad"`
}
