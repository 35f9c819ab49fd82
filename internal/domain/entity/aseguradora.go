package entity

// Aseguradora representa una compañía aseguradora con la que trabaja la correduría.
type Aseguradora struct {
	ID             int64
	Nombre         string
	ContactoNombre string
	Telefono       string
	Correo         string
	Direccion      string
}
