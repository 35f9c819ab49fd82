package entity

// Catalogo es una fila de tabla de consulta (roles, estados_usuario,
// tipos_seguro, estados_poliza): id + nombre.
type Catalogo struct {
	ID     int64
	Nombre string
}
